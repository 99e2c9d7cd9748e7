package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"campusfound/internal/model"
	"campusfound/internal/store"
)

// ClaimsHandler handles ownership claim endpoints.
type ClaimsHandler struct {
	DB *sql.DB
}

type claimRequest struct {
	ItemID  string `json:"itemId"`
	Contact string `json:"contact"`
	Message string `json:"message"`
}

// Create submits an ownership claim on behalf of the logged-in user.
func (h *ClaimsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		jsonError(w, http.StatusBadRequest, "itemId is required")
		return
	}
	if strings.TrimSpace(req.Contact) == "" || strings.TrimSpace(req.Message) == "" {
		jsonError(w, http.StatusBadRequest, "contact and message are required")
		return
	}

	claim, err := store.AddClaim(r.Context(), h.DB, store.ClaimInput{
		ItemID:  req.ItemID,
		UserID:  GetClaims(r.Context()).UserID,
		Contact: req.Contact,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("creating claim", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create claim")
		return
	}
	jsonResponse(w, http.StatusCreated, claim)
}

// List returns claims. Admins get every claim; students get their own.
func (h *ClaimsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var out []model.Claim
	if claims.Role == model.RoleAdmin {
		out = store.ListClaims(r.Context(), h.DB)
	} else {
		out = store.ClaimsForUser(r.Context(), h.DB, claims.UserID)
	}
	if out == nil {
		out = []model.Claim{}
	}
	jsonResponse(w, http.StatusOK, out)
}

// SetStatus moves a claim through the review workflow.
func (h *ClaimsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if store.GetClaim(r.Context(), h.DB, id) == nil {
		jsonError(w, http.StatusNotFound, "claim not found")
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !model.ValidClaimStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := store.SetClaimStatus(r.Context(), h.DB, id, req.Status); err != nil {
		slog.Error("setting claim status", "claim", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update status")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "claim updated"})
}
