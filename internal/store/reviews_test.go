package store

import (
	"context"
	"testing"

	"campusfound/internal/db"
	"campusfound/internal/model"
)

func TestAddReviewCoercesRating(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	tests := []struct {
		in   int
		want int
	}{
		{3, 3},
		{1, 1},
		{5, 5},
		{0, 5},
		{-2, 5},
		{9, 5},
	}
	for _, tt := range tests {
		review, err := AddReview(ctx, database, "usr_1", tt.in, "ok")
		if err != nil {
			t.Fatalf("AddReview(%d): %v", tt.in, err)
		}
		if review.Rating != tt.want {
			t.Errorf("rating %d: expected %d, got %d", tt.in, tt.want, review.Rating)
		}
	}
}

func TestAddReviewTrimsAndPrepends(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AddReview(ctx, database, "usr_1", 4, " solid ")
	second, _ := AddReview(ctx, database, "usr_2", 5, "great")

	reviews := ListReviews(ctx, database)
	if len(reviews) != 2 || reviews[0].ID != second.ID {
		t.Error("reviews are not newest-first")
	}
	if reviews[1].Comment != "solid" {
		t.Errorf("comment not trimmed: %q", reviews[1].Comment)
	}
}

func TestAverageRating(t *testing.T) {
	revs := []model.Review{{Rating: 5}, {Rating: 5}, {Rating: 4}}
	avg, ok := AverageRating(revs)
	if !ok {
		t.Fatal("expected ok for non-empty reviews")
	}
	if avg != 4.7 {
		t.Errorf("expected 4.7, got %v", avg)
	}
}

func TestAverageRatingEmptySentinel(t *testing.T) {
	if avg, ok := AverageRating(nil); ok || avg != 0 {
		t.Errorf("empty reviews must report no data, got (%v, %v)", avg, ok)
	}
}
