package entity

// Publication status values, stored as the enum name string.
const (
	StatusActive     = "ACTIVE"
	StatusCancelled  = "CANCELLED"
	StatusInProgress = "IN_PROGRESS"
	StatusFinished   = "FINISHED"
)

const (
	PublicationOffer   = "OFFER"
	PublicationRequest = "REQUEST"
)

// Offer is a company's published catering proposal.
type Offer struct {
	ID            string `json:"id" firestore:"id"`
	AuthorID      string `json:"author_id" firestore:"authorId"`
	AuthorName    string `json:"author_name" firestore:"authorName"`
	PriceRange    string `json:"price_range" firestore:"priceRange"`
	PeopleRange   string `json:"people_range" firestore:"peopleRange"`
	LocationRange string `json:"location_range" firestore:"locationRange"`
	Description   string `json:"description" firestore:"description"`
	CateringType  string `json:"catering_type" firestore:"cateringType"`
	Status        string `json:"status" firestore:"status"`
	CreatedAt     int64  `json:"created_at" firestore:"createdAt"`
}

// Request is a client's published catering need.
type Request struct {
	ID           string   `json:"id" firestore:"id"`
	AuthorID     string   `json:"author_id" firestore:"authorId"`
	AuthorName   string   `json:"author_name" firestore:"authorName"`
	PriceRange   string   `json:"price_range" firestore:"priceRange"`
	PeopleCount  int      `json:"people_count" firestore:"peopleCount"`
	Services     []string `json:"services" firestore:"services"`
	CateringType string   `json:"catering_type" firestore:"cateringType"`
	Location     string   `json:"location" firestore:"location"`
	EventDate    string   `json:"event_date" firestore:"eventDate"`
	Notes        string   `json:"notes" firestore:"notes"`
	Status       string   `json:"status" firestore:"status"`
	CreatedAt    int64    `json:"created_at" firestore:"createdAt"`
}

// Title picks the human-readable label an inbox entry carries for the
// publication: catering type first, then the description, then a generic
// fallback naming the author.
func (o *Offer) Title() string {
	if o.CateringType != "" {
		return o.CateringType
	}
	if o.Description != "" {
		return o.Description
	}
	return "Proposal by " + o.AuthorName
}

func (r *Request) Title() string {
	if r.CateringType != "" {
		return r.CateringType
	}
	return "Request by " + r.AuthorName
}

func ValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusCancelled, StatusInProgress, StatusFinished:
		return true
	}
	return false
}
