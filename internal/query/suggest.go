package query

import (
	"sort"
	"strings"

	"campusfound/internal/model"
)

// Categories returns the distinct non-empty item categories, sorted.
func Categories(items []model.Item) []string {
	return distinct(items, func(it model.Item) string { return it.Category })
}

// Areas returns the distinct location areas (the part before " - "), sorted.
func Areas(items []model.Item) []string {
	return distinct(items, func(it model.Item) string { return it.Area() })
}

// Suggestions bundles type-ahead results for a search query.
type Suggestions struct {
	Items      []model.Item `json:"items"`
	Categories []string     `json:"categories"`
	Areas      []string     `json:"areas"`
}

// itemSuggestionMin is the minimum query length before item matches are
// offered; shorter queries still get category and area completions.
const itemSuggestionMin = 2

// Suggest computes type-ahead suggestions: approved items matching the query
// (capped at limit), plus matching categories and areas. Only approved items
// are ever suggested, whoever is asking.
func Suggest(items []model.Item, q string, limit int) Suggestions {
	needle := strings.ToLower(strings.TrimSpace(q))
	s := Suggestions{}
	if needle == "" {
		return s
	}

	if len(needle) >= itemSuggestionMin {
		matches := BySearch(VisibleTo(items, nil), needle)
		if len(matches) > limit {
			matches = matches[:limit]
		}
		s.Items = matches
	}

	for _, c := range Categories(items) {
		if strings.Contains(strings.ToLower(c), needle) {
			s.Categories = append(s.Categories, c)
		}
	}
	for _, a := range Areas(items) {
		if strings.Contains(strings.ToLower(a), needle) {
			s.Areas = append(s.Areas, a)
		}
	}
	return s
}

func distinct(items []model.Item, field func(model.Item) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		v := field(it)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
