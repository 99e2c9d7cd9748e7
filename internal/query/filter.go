// Package query derives filtered, sorted views over the item collection.
// Every function is pure: inputs are never mutated and results are fresh
// slices, so views can be recomputed on any dependency change.
package query

import (
	"sort"
	"strings"
	"time"

	"campusfound/internal/model"
)

// Sort keys.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortTitle    = "title"
	SortCategory = "category"
	SortLocation = "location"
)

// Date-range buckets, by age of the report in whole days.
const (
	RangeToday   = "today"   // 0 days
	RangeWeek    = "week"    // ≤ 7
	RangeMonth   = "month"   // ≤ 30
	RangeQuarter = "3months" // ≤ 90
)

// Filter describes one view of the item list. Zero values mean "no constraint"; Sort
// defaults to newest-first.
type Filter struct {
	Status   string
	Category string
	Location string
	Range    string
	Search   string
	Sort     string
}

// Apply composes the full pipeline: visibility, status, category, location,
// date range, text search, then sort.
func Apply(items []model.Item, viewer *model.User, f Filter, now time.Time) []model.Item {
	out := VisibleTo(items, viewer)
	out = ByStatus(out, f.Status)
	out = ByCategory(out, f.Category)
	out = ByLocation(out, f.Location)
	out = ByAge(out, f.Range, now)
	out = BySearch(out, f.Search)
	return Sorted(out, f.Sort)
}

// VisibleTo applies the visibility rule: non-admin viewers (including
// anonymous ones) see approved items only; admins see everything.
func VisibleTo(items []model.Item, viewer *model.User) []model.Item {
	if viewer.IsAdmin() {
		return keep(items, func(model.Item) bool { return true })
	}
	return keep(items, func(it model.Item) bool {
		return it.Status == model.ItemStatusApproved
	})
}

// ByStatus keeps items with the given status. "" and "all" disable the
// filter.
func ByStatus(items []model.Item, status string) []model.Item {
	if status == "" || status == "all" {
		return items
	}
	return keep(items, func(it model.Item) bool { return it.Status == status })
}

// ByCategory keeps items whose category matches exactly. "" and "All" disable
// the filter.
func ByCategory(items []model.Item, category string) []model.Item {
	if category == "" || category == "All" {
		return items
	}
	return keep(items, func(it model.Item) bool { return it.Category == category })
}

// ByLocation keeps items whose location, or its area prefix, contains the
// query case-insensitively. Locations follow the "<Area> - <Subarea>"
// convention.
func ByLocation(items []model.Item, location string) []model.Item {
	needle := strings.ToLower(strings.TrimSpace(location))
	if needle == "" {
		return items
	}
	return keep(items, func(it model.Item) bool {
		return strings.Contains(strings.ToLower(it.Location), needle) ||
			strings.Contains(strings.ToLower(it.Area()), needle)
	})
}

// ByAge keeps items reported within the bucket's age limit, counted in whole
// days since createdAt. An unknown or empty bucket disables the filter.
func ByAge(items []model.Item, bucket string, now time.Time) []model.Item {
	var maxDays int
	switch bucket {
	case RangeToday:
		maxDays = 0
	case RangeWeek:
		maxDays = 7
	case RangeMonth:
		maxDays = 30
	case RangeQuarter:
		maxDays = 90
	default:
		return items
	}
	return keep(items, func(it model.Item) bool {
		age := now.Sub(time.UnixMilli(it.CreatedAt))
		return int(age.Hours()/24) <= maxDays
	})
}

// BySearch keeps items whose title, description, location, or category
// contains the text case-insensitively.
func BySearch(items []model.Item, text string) []model.Item {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return items
	}
	return keep(items, func(it model.Item) bool {
		hay := strings.ToLower(it.Title + " " + it.Description + " " + it.Location + " " + it.Category)
		return strings.Contains(hay, needle)
	})
}

// Sorted returns the items ordered by the given key. Unknown keys fall back
// to newest-first, the default ordering.
func Sorted(items []model.Item, key string) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)

	var less func(a, b model.Item) bool
	switch key {
	case SortOldest:
		less = func(a, b model.Item) bool { return a.CreatedAt < b.CreatedAt }
	case SortTitle:
		less = func(a, b model.Item) bool { return a.Title < b.Title }
	case SortCategory:
		less = func(a, b model.Item) bool { return a.Category < b.Category }
	case SortLocation:
		less = func(a, b model.Item) bool { return a.Location < b.Location }
	default:
		less = func(a, b model.Item) bool { return a.CreatedAt > b.CreatedAt }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func keep(items []model.Item, pred func(model.Item) bool) []model.Item {
	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
