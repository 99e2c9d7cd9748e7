package model

// Review is an append-only site review. Ratings are clamped to 1-5 at
// creation; there is no update or delete.
type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt int64  `json:"createdAt"`
}

// Session is the single active-user pointer for this installation, stored
// under its own key as either the object or null.
type Session struct {
	UserID string `json:"userId"`
}
