package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"campusfound/internal/model"
	"campusfound/internal/store"
)

// ReviewsHandler handles the public feedback wall.
type ReviewsHandler struct {
	DB *sql.DB
}

type reviewsResponse struct {
	Reviews []model.Review `json:"reviews"`
	Average *float64       `json:"average"`
}

// List returns all reviews with their rounded average rating. Average is
// null when there are no reviews yet.
func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews := store.ListReviews(r.Context(), h.DB)
	if reviews == nil {
		reviews = []model.Review{}
	}

	resp := reviewsResponse{Reviews: reviews}
	if avg, ok := store.AverageRating(reviews); ok {
		resp.Average = &avg
	}
	jsonResponse(w, http.StatusOK, resp)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create posts a review as the logged-in user. Out-of-range ratings are
// coerced to 5.
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Comment) == "" {
		jsonError(w, http.StatusBadRequest, "comment is required")
		return
	}

	review, err := store.AddReview(r.Context(), h.DB, GetClaims(r.Context()).UserID, req.Rating, req.Comment)
	if err != nil {
		slog.Error("creating review", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create review")
		return
	}
	jsonResponse(w, http.StatusCreated, review)
}
