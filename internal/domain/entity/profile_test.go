package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyFirstReview(t *testing.T) {
	agg := RatingAggregate{}

	got := agg.Apply(Review{ID: "r1", Rating: 4})

	assert.Equal(t, 4.0, got.AverageRating)
	assert.Equal(t, 1, got.ReviewCount)
	assert.Len(t, got.RecentReviews, 1)
}

func TestApplyRunningAverage(t *testing.T) {
	agg := RatingAggregate{}
	for _, rating := range []int{5, 3, 4} {
		agg = agg.Apply(Review{Rating: rating})
	}

	assert.Equal(t, 3, agg.ReviewCount)
	assert.InDelta(t, 4.0, agg.AverageRating, 0.0001)
}

func TestApplyKeepsAverageOverTruncatedHistory(t *testing.T) {
	// The average must cover every review ever received, not just the
	// retained recent ones.
	agg := RatingAggregate{}
	for i := 0; i < 10; i++ {
		agg = agg.Apply(Review{Rating: 2})
	}
	agg = agg.Apply(Review{Rating: 5})

	assert.Equal(t, 11, agg.ReviewCount)
	assert.InDelta(t, (2.0*10+5)/11, agg.AverageRating, 0.0001)
	assert.Len(t, agg.RecentReviews, MaxRecentReviews)
}

func TestApplyPrependsNewestReview(t *testing.T) {
	agg := RatingAggregate{}
	for _, id := range []string{"a", "b", "c"} {
		agg = agg.Apply(Review{ID: id, Rating: 3})
	}

	assert.Equal(t, "c", agg.RecentReviews[0].ID)
	assert.Equal(t, "a", agg.RecentReviews[2].ID)
}

func TestApplyTruncatesOldestReviews(t *testing.T) {
	agg := RatingAggregate{}
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		agg = agg.Apply(Review{ID: id, Rating: 3})
	}

	assert.Len(t, agg.RecentReviews, MaxRecentReviews)
	assert.Equal(t, "g", agg.RecentReviews[0].ID)
	assert.Equal(t, "c", agg.RecentReviews[MaxRecentReviews-1].ID)
}

func TestProfileFromUserFallsBackToEmail(t *testing.T) {
	profile := ProfileFromUser(&User{ID: "u1", Email: "a@b.com"})

	assert.Equal(t, "a@b.com", profile.Name)
}
