package query

import (
	"sort"
	"time"

	"campusfound/internal/model"
)

// LabelCount is one bar of a breakdown chart.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalItems     int          `json:"totalItems"`
	ApprovedItems  int          `json:"approvedItems"`
	PendingItems   int          `json:"pendingItems"`
	RejectedItems  int          `json:"rejectedItems"`
	TotalClaims    int          `json:"totalClaims"`
	ResolvedClaims int          `json:"resolvedClaims"`
	ItemsThisWeek  int          `json:"itemsThisWeek"`
	ItemsLastWeek  int          `json:"itemsLastWeek"`
	TopCategories  []LabelCount `json:"topCategories"`
	TopAreas       []LabelCount `json:"topAreas"`
}

// topN caps the breakdown lists.
const topN = 5

// ComputeStats derives the dashboard summary from the raw collections.
func ComputeStats(items []model.Item, claims []model.Claim, now time.Time) Stats {
	s := Stats{TotalItems: len(items), TotalClaims: len(claims)}

	weekAgo := now.Add(-7 * 24 * time.Hour).UnixMilli()
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour).UnixMilli()

	categories := make(map[string]int)
	areas := make(map[string]int)
	for _, it := range items {
		switch it.Status {
		case model.ItemStatusApproved:
			s.ApprovedItems++
		case model.ItemStatusPending:
			s.PendingItems++
		case model.ItemStatusRejected:
			s.RejectedItems++
		}
		if it.CreatedAt > weekAgo {
			s.ItemsThisWeek++
		} else if it.CreatedAt > twoWeeksAgo {
			s.ItemsLastWeek++
		}
		if it.Category != "" {
			categories[it.Category]++
		}
		if area := it.Area(); area != "" {
			areas[area]++
		}
	}

	for _, c := range claims {
		if c.Status == model.ClaimStatusResolved {
			s.ResolvedClaims++
		}
	}

	s.TopCategories = top(categories, topN)
	s.TopAreas = top(areas, topN)
	return s
}

func top(counts map[string]int, n int) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
