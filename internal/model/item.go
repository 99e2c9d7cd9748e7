package model

import "strings"

// Item represents a reported found object awaiting or having received admin
// review. CreatedAt is epoch milliseconds; DateFound is a YYYY-MM-DD string.
type Item struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	Location     string  `json:"location"`
	DateFound    string  `json:"dateFound"`
	Description  string  `json:"description"`
	ImageDataURL string  `json:"imageDataUrl"`
	Status       string  `json:"status"`
	CreatedAt    int64   `json:"createdAt"`
	ReportedBy   *string `json:"reportedByUserId"`
}

// Item statuses. Only approved items are visible to non-admin viewers.
const (
	ItemStatusPending  = "pending"
	ItemStatusApproved = "approved"
	ItemStatusRejected = "rejected"
)

// ValidItemStatus reports whether s is a known item status.
func ValidItemStatus(s string) bool {
	return s == ItemStatusPending || s == ItemStatusApproved || s == ItemStatusRejected
}

// Area returns the filterable area of a location. Locations follow the
// "<Area> - <Subarea>" convention; the part before " - " is the area. A
// location without a subarea is its own area.
func (i Item) Area() string {
	area, _, _ := strings.Cut(i.Location, " - ")
	return area
}
