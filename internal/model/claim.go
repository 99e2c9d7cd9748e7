package model

// Claim represents a user's assertion of ownership of an item. ItemID and
// UserID are weak references: they are never verified against the referenced
// collections.
type Claim struct {
	ID        string `json:"id"`
	ItemID    string `json:"itemId"`
	UserID    string `json:"userId"`
	Contact   string `json:"contact"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"`
	Status    string `json:"status"`
}

// Claim statuses. Workflow markers only: any status can move to any other.
const (
	ClaimStatusSubmitted = "submitted"
	ClaimStatusInReview  = "in_review"
	ClaimStatusResolved  = "resolved"
)

// ValidClaimStatus reports whether s is a known claim status.
func ValidClaimStatus(s string) bool {
	return s == ClaimStatusSubmitted || s == ClaimStatusInReview || s == ClaimStatusResolved
}
