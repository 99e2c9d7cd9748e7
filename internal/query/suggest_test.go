package query

import (
	"reflect"
	"testing"
	"time"

	"campusfound/internal/model"
)

func TestCategoriesAndAreasDistinctSorted(t *testing.T) {
	items := []model.Item{
		{Category: "Keys", Location: "Library - 2nd floor"},
		{Category: "Electronics", Location: "Library - Study Room 3"},
		{Category: "Keys", Location: "Gym - Locker Room"},
		{Category: "", Location: ""},
	}

	if got := Categories(items); !reflect.DeepEqual(got, []string{"Electronics", "Keys"}) {
		t.Errorf("Categories: got %v", got)
	}
	if got := Areas(items); !reflect.DeepEqual(got, []string{"Gym", "Library"}) {
		t.Errorf("Areas: got %v", got)
	}
}

func TestSuggest(t *testing.T) {
	items := []model.Item{
		{ID: "a", Title: "Brown Leather Wallet", Category: "Wallet",
			Location: "Gym - Locker Room", Status: model.ItemStatusApproved},
		{ID: "b", Title: "Wallet (pending)", Category: "Wallet",
			Location: "Library - Desk", Status: model.ItemStatusPending},
	}

	s := Suggest(items, "wal", 8)
	if len(s.Items) != 1 || s.Items[0].ID != "a" {
		t.Errorf("only approved items may be suggested, got %+v", s.Items)
	}
	if !reflect.DeepEqual(s.Categories, []string{"Wallet"}) {
		t.Errorf("categories: got %v", s.Categories)
	}

	// Single-character queries complete categories/areas but not items.
	s = Suggest(items, "g", 8)
	if len(s.Items) != 0 {
		t.Errorf("short query must not match items, got %+v", s.Items)
	}
	if !reflect.DeepEqual(s.Areas, []string{"Gym"}) {
		t.Errorf("areas: got %v", s.Areas)
	}

	if s := Suggest(items, "   ", 8); len(s.Items)+len(s.Categories)+len(s.Areas) != 0 {
		t.Errorf("blank query must suggest nothing, got %+v", s)
	}
}

func TestSuggestLimit(t *testing.T) {
	var items []model.Item
	for range 12 {
		items = append(items, model.Item{
			Title: "Water Bottle", Status: model.ItemStatusApproved,
		})
	}
	if s := Suggest(items, "bottle", 8); len(s.Items) != 8 {
		t.Errorf("expected limit of 8 item suggestions, got %d", len(s.Items))
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	items := []model.Item{
		{Status: model.ItemStatusApproved, Category: "Keys", Location: "Library - 2nd floor",
			CreatedAt: now.Add(-2 * day).UnixMilli()},
		{Status: model.ItemStatusApproved, Category: "Keys", Location: "Library - Desk",
			CreatedAt: now.Add(-10 * day).UnixMilli()},
		{Status: model.ItemStatusPending, Category: "Bag", Location: "Gym",
			CreatedAt: now.Add(-1 * day).UnixMilli()},
		{Status: model.ItemStatusRejected, Category: "Other", Location: "Main Entrance",
			CreatedAt: now.Add(-40 * day).UnixMilli()},
	}
	claims := []model.Claim{
		{Status: model.ClaimStatusResolved},
		{Status: model.ClaimStatusSubmitted},
	}

	s := ComputeStats(items, claims, now)
	if s.TotalItems != 4 || s.ApprovedItems != 2 || s.PendingItems != 1 || s.RejectedItems != 1 {
		t.Errorf("status counts wrong: %+v", s)
	}
	if s.TotalClaims != 2 || s.ResolvedClaims != 1 {
		t.Errorf("claim counts wrong: %+v", s)
	}
	if s.ItemsThisWeek != 2 || s.ItemsLastWeek != 1 {
		t.Errorf("week counts wrong: this=%d last=%d", s.ItemsThisWeek, s.ItemsLastWeek)
	}
	if len(s.TopCategories) == 0 || s.TopCategories[0].Label != "Keys" || s.TopCategories[0].Count != 2 {
		t.Errorf("top categories wrong: %+v", s.TopCategories)
	}
	if len(s.TopAreas) == 0 || s.TopAreas[0].Label != "Library" {
		t.Errorf("top areas wrong: %+v", s.TopAreas)
	}
}
