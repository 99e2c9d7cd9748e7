package store

import (
	"context"
	"math"
	"strings"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// ListReviews returns all reviews, newest first.
func ListReviews(ctx context.Context, q kv.Querier) []model.Review {
	return kv.Load(ctx, q, KeyReviews, []model.Review(nil))
}

// AddReview appends a review (prepended, newest-first). A rating outside 1-5
// is coerced to 5. Reviews are immutable once created.
func AddReview(ctx context.Context, q kv.Querier, userID string, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		rating = 5
	}

	review := model.Review{
		ID:        model.NewID(model.PrefixReview),
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UnixMilli(),
	}

	reviews := append([]model.Review{review}, ListReviews(ctx, q)...)
	if err := kv.Save(ctx, q, KeyReviews, reviews); err != nil {
		return nil, err
	}
	return &review, nil
}

// AverageRating returns the mean rating rounded to one decimal place. The
// second return value is false for an empty collection: callers render the
// "no data" sentinel instead of a zero.
func AverageRating(reviews []model.Review) (float64, bool) {
	if len(reviews) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10, true
}
