package domain

import "strings"

// ItemFilter narrows a list of items. Q is a case-insensitive substring
// match against title or category; Status and Category are exact matches.
// Empty fields pass everything, non-empty fields are AND-combined.
type ItemFilter struct {
	Q        string
	Status   string
	Category string
}

// FilterItems is pure: the input slice is never mutated and the output
// preserves input order.
func FilterItems(items []Item, f ItemFilter) []Item {
	q := strings.ToLower(f.Q)

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(string(item.Category)), q) {
			continue
		}
		if f.Status != "" && string(item.Status) != f.Status {
			continue
		}
		if f.Category != "" && string(item.Category) != f.Category {
			continue
		}
		out = append(out, item)
	}
	return out
}
