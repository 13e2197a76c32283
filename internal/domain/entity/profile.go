package entity

// MaxRecentReviews bounds the review list embedded in a profile document.
// The average and count cover every review ever received; only the newest
// five are retained verbatim.
const MaxRecentReviews = 5

// Review is embedded inside a profile's recentReviews and never stored on
// its own.
type Review struct {
	ID         string `json:"id" firestore:"id"`
	AuthorID   string `json:"author_id" firestore:"authorId"`
	AuthorName string `json:"author_name" firestore:"authorName"`
	Rating     int    `json:"rating" firestore:"rating"`
	Comment    string `json:"comment" firestore:"comment"`
}

type PreviousWork struct {
	Title       string `json:"title" firestore:"title"`
	Description string `json:"description" firestore:"description"`
	ImageURL    string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
}

// PublicProfile is the denormalized public view of a users document,
// carrying the aggregated rating data alongside the identity fields.
type PublicProfile struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Role          string         `json:"role"`
	Email         string         `json:"email"`
	Description   string         `json:"description"`
	Address       string         `json:"address"`
	Affiliation   string         `json:"affiliation"`
	AverageRating float64        `json:"average_rating"`
	ReviewCount   int            `json:"review_count"`
	RecentReviews []Review       `json:"recent_reviews"`
	PreviousWorks []PreviousWork `json:"previous_works"`
	JoinedAt      int64          `json:"joined_at"`
}

func ProfileFromUser(u *User) *PublicProfile {
	return &PublicProfile{
		ID:          u.ID,
		Name:        u.PublicName(),
		Role:        u.Role,
		Email:       u.Email,
		Description: u.ProfileDescription,
		Address:     u.Address,
		Affiliation: u.Affiliation,
	}
}

// ReviewPrompt pairs the two sides of a finished job so the client can rate
// the company and vice versa. Returned when a publication is marked
// FINISHED by someone other than its author.
type ReviewPrompt struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Subject     string `json:"subject"`
}

// RatingAggregate is the mutable slice of a profile the rating transaction
// reads and writes back.
type RatingAggregate struct {
	AverageRating float64
	ReviewCount   int
	RecentReviews []Review
}

// Apply folds one review into the aggregate: running-average update, count
// increment, and prepend-then-truncate of the recent list.
func (a RatingAggregate) Apply(review Review) RatingAggregate {
	newCount := a.ReviewCount + 1
	newAverage := float64(review.Rating)
	if a.ReviewCount > 0 {
		newAverage = (a.AverageRating*float64(a.ReviewCount) + float64(review.Rating)) / float64(newCount)
	}

	recent := make([]Review, 0, len(a.RecentReviews)+1)
	recent = append(recent, review)
	recent = append(recent, a.RecentReviews...)
	if len(recent) > MaxRecentReviews {
		recent = recent[:MaxRecentReviews]
	}

	return RatingAggregate{
		AverageRating: newAverage,
		ReviewCount:   newCount,
		RecentReviews: recent,
	}
}
