package store

import (
	"context"
	"time"

	"campusfound/internal/kv"
	"campusfound/internal/model"
)

// seedItemSpec describes one demo item relative to the seeding time.
type seedItemSpec struct {
	title    string
	category string
	location string
	desc     string
	status   string
	age      time.Duration
}

var seedItemSpecs = []seedItemSpec{
	// Approved.
	{"Black Water Bottle (Hydro Flask)", "Bottle", "Library - 2nd floor",
		"Found near the study tables. Has a small dent at the bottom.",
		model.ItemStatusApproved, 48 * time.Hour},
	{"iPhone 13 Pro - Blue Case", "Electronics", "Student Union - Food Court",
		"Found on table near Subway. Screen has minor crack. Phone is locked.",
		model.ItemStatusApproved, 24 * time.Hour},
	{"Brown Leather Wallet", "Wallet", "Gym - Locker Room",
		"Contains student ID and some cash. Found in men's locker room.",
		model.ItemStatusApproved, 72 * time.Hour},
	{"Red Nike Backpack", "Bag", "Engineering Building - Room 205",
		"Contains textbooks and notebooks. Left after class ended.",
		model.ItemStatusApproved, 96 * time.Hour},
	{"Silver MacBook Pro 13\"", "Electronics", "Library - Study Room 3",
		"Left in study room with charger. Has stickers on the back.",
		model.ItemStatusApproved, 120 * time.Hour},
	// Pending.
	{"Silver Keychain with 2 keys", "Keys", "Cafeteria entrance",
		"Keychain has a blue tag. Turned in by staff.",
		model.ItemStatusPending, 20 * time.Hour},
	{"AirPods Pro (2nd Gen)", "Electronics", "Business Building - Lecture Hall B",
		"Found under seat after economics class. Case is slightly scratched.",
		model.ItemStatusPending, 12 * time.Hour},
	{"Blue Adidas Water Bottle", "Bottle", "Recreation Center - Basketball Court",
		"Left on bleachers after intramural game. Half full.",
		model.ItemStatusPending, 8 * time.Hour},
	{"Gold Ring with Small Diamond", "Jewelry", "Chemistry Lab - Room 101",
		"Found near sink area. Appears to be an engagement ring.",
		model.ItemStatusPending, 6 * time.Hour},
	{"Black Jansport Backpack", "Bag", "Parking Lot C",
		"Found near bike racks. Contains laptop and school supplies.",
		model.ItemStatusPending, 4 * time.Hour},
	{"Prescription Glasses - Black Frames", "Accessories", "Math Building - Room 302",
		"Left on desk after calculus exam. Progressive lenses.",
		model.ItemStatusPending, 2 * time.Hour},
	{"Samsung Galaxy Watch", "Electronics", "Fitness Center - Treadmill Area",
		"Black sport band. Found on equipment after workout session.",
		model.ItemStatusPending, 1 * time.Hour},
	// Rejected.
	{"Old Textbook - Biology 101", "Books", "Library - Return Desk",
		"Very worn textbook, appears to be abandoned.",
		model.ItemStatusRejected, 7 * 24 * time.Hour},
	{"Broken Umbrella", "Other", "Main Entrance",
		"Umbrella with broken ribs, not repairable.",
		model.ItemStatusRejected, 6 * 24 * time.Hour},
}

// seedClaimSpec describes one demo claim against the nth approved item.
type seedClaimSpec struct {
	userID  string
	contact string
	message string
	status  string
	age     time.Duration
}

var seedClaimSpecs = []seedClaimSpec{
	{"user_123", "sarah.johnson@university.edu",
		`This is my water bottle! I lost it yesterday while studying for my midterm. It has my initials "SJ" scratched on the bottom.`,
		model.ClaimStatusSubmitted, 18 * time.Hour},
	{"user_456", "mike.chen@university.edu",
		"I think this might be my phone. I was eating lunch at the food court when I realized it was missing. The blue case matches mine exactly.",
		model.ClaimStatusInReview, 12 * time.Hour},
	{"user_789", "alex.rodriguez@university.edu",
		"This is definitely my wallet! I was at the gym yesterday and must have left it in the locker room. My student ID should be inside.",
		model.ClaimStatusResolved, 8 * time.Hour},
	{"user_101", "emma.davis@university.edu",
		"I believe this is my backpack. I had engineering class in room 205 and left it there by accident. It should have my thermodynamics textbook inside.",
		model.ClaimStatusSubmitted, 6 * time.Hour},
	{"user_202", "james.wilson@university.edu",
		"This looks like my MacBook! I was in study room 3 working on my computer science project. The stickers on the back are from various tech conferences I attended.",
		model.ClaimStatusInReview, 4 * time.Hour},
}

// SeedItems inserts the demo item set when the items collection is empty.
// Idempotent: a non-empty collection is left untouched.
func SeedItems(ctx context.Context, q kv.Querier) error {
	if len(ListItems(ctx, q)) > 0 {
		return nil
	}

	now := time.Now()
	items := make([]model.Item, 0, len(seedItemSpecs))
	for _, s := range seedItemSpecs {
		created := now.Add(-s.age)
		items = append(items, model.Item{
			ID:          model.NewID(model.PrefixItem),
			Title:       s.title,
			Category:    s.category,
			Location:    s.location,
			DateFound:   created.Format("2006-01-02"),
			Description: s.desc,
			Status:      s.status,
			CreatedAt:   created.UnixMilli(),
		})
	}
	return kv.Save(ctx, q, KeyItems, items)
}

// SeedClaims inserts demo claims against the approved seed items when the
// claims collection is empty. Idempotent, and a no-op when there are no
// approved items to claim.
func SeedClaims(ctx context.Context, q kv.Querier) error {
	if len(ListClaims(ctx, q)) > 0 {
		return nil
	}

	var approved []model.Item
	for _, it := range ListItems(ctx, q) {
		if it.Status == model.ItemStatusApproved {
			approved = append(approved, it)
		}
	}
	if len(approved) == 0 {
		return nil
	}

	now := time.Now()
	var claims []model.Claim
	for i, s := range seedClaimSpecs {
		if i >= len(approved) {
			break
		}
		claims = append(claims, model.Claim{
			ID:        model.NewID(model.PrefixClaim),
			ItemID:    approved[i].ID,
			UserID:    s.userID,
			Contact:   s.contact,
			Message:   s.message,
			CreatedAt: now.Add(-s.age).UnixMilli(),
			Status:    s.status,
		})
	}
	return kv.Save(ctx, q, KeyClaims, claims)
}
