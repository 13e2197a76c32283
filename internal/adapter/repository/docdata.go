package repository

import (
	"time"

	"cloud.google.com/go/firestore"

	"caterlink/internal/domain/entity"
)

const (
	collectionOffers      = "offers"
	collectionRequests    = "requests"
	collectionUsers       = "users"
	collectionPreferences = "userPreferences"
	collectionInbox       = "inbox"
)

// The decode helpers below implement the parse-or-skip boundary: documents
// missing their identity fields are dropped from derived collections,
// everything else defaults field by field. Legacy documents may carry
// native timestamps where newer ones store epoch milliseconds, so the
// time decode accepts both.

func strField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func floatField(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func strSlice(data map[string]interface{}, key string) []string {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func epochMillis(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case float64:
		return int64(t)
	case time.Time:
		return t.UnixMilli()
	}
	return 0
}

func statusField(data map[string]interface{}, key string) string {
	s := strField(data, key)
	if !entity.ValidStatus(s) {
		return entity.StatusActive
	}
	return s
}

func decodeOffer(doc *firestore.DocumentSnapshot) (*entity.Offer, bool) {
	data := doc.Data()
	authorID := strField(data, "authorId")
	if authorID == "" {
		return nil, false
	}
	return &entity.Offer{
		ID:            doc.Ref.ID,
		AuthorID:      authorID,
		AuthorName:    strField(data, "authorName"),
		PriceRange:    strField(data, "priceRange"),
		PeopleRange:   strField(data, "peopleRange"),
		LocationRange: strField(data, "locationRange"),
		Description:   strField(data, "description"),
		CateringType:  strField(data, "cateringType"),
		Status:        statusField(data, "status"),
		CreatedAt:     epochMillis(data["createdAt"]),
	}, true
}

func decodeRequest(doc *firestore.DocumentSnapshot) (*entity.Request, bool) {
	data := doc.Data()
	authorID := strField(data, "authorId")
	if authorID == "" {
		return nil, false
	}
	return &entity.Request{
		ID:           doc.Ref.ID,
		AuthorID:     authorID,
		AuthorName:   strField(data, "authorName"),
		PriceRange:   strField(data, "priceRange"),
		PeopleCount:  intField(data, "peopleCount"),
		Services:     strSlice(data, "services"),
		CateringType: strField(data, "cateringType"),
		Location:     strField(data, "location"),
		EventDate:    strField(data, "eventDate"),
		Notes:        strField(data, "notes"),
		Status:       statusField(data, "status"),
		CreatedAt:    epochMillis(data["createdAt"]),
	}, true
}

func decodeReview(v interface{}) (entity.Review, bool) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return entity.Review{}, false
	}
	authorID := strField(m, "authorId")
	if authorID == "" {
		return entity.Review{}, false
	}
	rating := intField(m, "rating")
	if rating == 0 {
		return entity.Review{}, false
	}
	return entity.Review{
		ID:         strField(m, "id"),
		AuthorID:   authorID,
		AuthorName: strField(m, "authorName"),
		Rating:     rating,
		Comment:    strField(m, "comment"),
	}, true
}

func decodeReviews(data map[string]interface{}, key string) []entity.Review {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]entity.Review, 0, len(raw))
	for _, item := range raw {
		if review, ok := decodeReview(item); ok {
			out = append(out, review)
		}
	}
	return out
}

func decodePreviousWorks(data map[string]interface{}, key string) []entity.PreviousWork {
	raw, ok := data[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]entity.PreviousWork, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		title := strField(m, "title")
		if title == "" {
			continue
		}
		out = append(out, entity.PreviousWork{
			Title:       title,
			Description: strField(m, "description"),
			ImageURL:    strField(m, "imageUrl"),
		})
	}
	return out
}

func decodeProfile(doc *firestore.DocumentSnapshot) (*entity.PublicProfile, bool) {
	data := doc.Data()
	role := strField(data, "role")
	if role == "" {
		return nil, false
	}
	if !entity.ValidRole(role) {
		role = entity.RoleClient
	}
	name := strField(data, "displayName")
	if name == "" {
		name = strField(data, "email")
	}
	return &entity.PublicProfile{
		ID:            doc.Ref.ID,
		Name:          name,
		Role:          role,
		Email:         strField(data, "email"),
		Description:   strField(data, "profileDescription"),
		Address:       strField(data, "address"),
		Affiliation:   strField(data, "affiliation"),
		AverageRating: floatField(data, "averageRating"),
		ReviewCount:   intField(data, "reviewCount"),
		RecentReviews: decodeReviews(data, "recentReviews"),
		PreviousWorks: decodePreviousWorks(data, "previousWorks"),
		JoinedAt:      epochMillis(data["joinedAt"]),
	}, true
}

func decodeInboxEntry(doc *firestore.DocumentSnapshot) (*entity.InboxEntry, bool) {
	data := doc.Data()
	entryType := strField(data, "entryType")
	switch entryType {
	case entity.EntryStatusChange, entity.EntryExecutionRequest, entity.EntryExecutionResponse:
	default:
		return nil, false
	}
	publicationType := strField(data, "publicationType")
	if publicationType != entity.PublicationOffer {
		publicationType = entity.PublicationRequest
	}
	return &entity.InboxEntry{
		ID:                doc.Ref.ID,
		EntryType:         entryType,
		Title:             strField(data, "title"),
		Body:              strField(data, "body"),
		Timestamp:         epochMillis(data["timestamp"]),
		ActorID:           strField(data, "actorId"),
		ActorName:         strField(data, "actorName"),
		RecipientID:       strField(data, "recipientId"),
		RecipientName:     strField(data, "recipientName"),
		PublicationID:     strField(data, "publicationId"),
		PublicationTitle:  strField(data, "publicationTitle"),
		PublicationType:   publicationType,
		ExecutionStatus:   strField(data, "executionStatus"),
		PublicationStatus: strField(data, "publicationStatus"),
		ResolvedAt:        epochMillis(data["resolvedAt"]),
		Participants:      strSlice(data, "participants"),
	}, true
}

func reviewToMap(review entity.Review) map[string]interface{} {
	return map[string]interface{}{
		"id":         review.ID,
		"authorId":   review.AuthorID,
		"authorName": review.AuthorName,
		"rating":     review.Rating,
		"comment":    review.Comment,
	}
}

func reviewsToMaps(reviews []entity.Review) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, reviewToMap(review))
	}
	return out
}
