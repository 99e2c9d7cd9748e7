package store

import (
	"context"
	"strings"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// ClaimInput is the payload for submitting an ownership claim. ItemID and
// UserID must be validated by the caller; the repository stores them as weak
// references without checking that they resolve.
type ClaimInput struct {
	ItemID  string
	UserID  string
	Contact string
	Message string
}

// ListClaims returns all claims, newest first.
func ListClaims(ctx context.Context, q kv.Querier) []model.Claim {
	return kv.Load(ctx, q, KeyClaims, []model.Claim(nil))
}

// GetClaim returns a claim by ID, or nil if absent.
func GetClaim(ctx context.Context, q kv.Querier, id string) *model.Claim {
	for _, c := range ListClaims(ctx, q) {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

// ClaimsForUser returns the claims submitted by one user, newest first.
func ClaimsForUser(ctx context.Context, q kv.Querier, userID string) []model.Claim {
	var out []model.Claim
	for _, c := range ListClaims(ctx, q) {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out
}

// AddClaim creates a claim with status submitted and prepends it.
func AddClaim(ctx context.Context, q kv.Querier, in ClaimInput) (*model.Claim, error) {
	claim := model.Claim{
		ID:        model.NewID(model.PrefixClaim),
		ItemID:    in.ItemID,
		UserID:    in.UserID,
		Contact:   strings.TrimSpace(in.Contact),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: time.Now().UnixMilli(),
		Status:    model.ClaimStatusSubmitted,
	}

	claims := append([]model.Claim{claim}, ListClaims(ctx, q)...)
	if err := kv.Save(ctx, q, KeyClaims, claims); err != nil {
		return nil, err
	}
	return &claim, nil
}

// SetClaimStatus sets a claim's status unconditionally; there is no enforced
// ordering between statuses. An unknown ID is a no-op.
func SetClaimStatus(ctx context.Context, q kv.Querier, id, status string) error {
	claims := ListClaims(ctx, q)
	for i, c := range claims {
		if c.ID == id {
			claims[i].Status = status
		}
	}
	return kv.Save(ctx, q, KeyClaims, claims)
}
