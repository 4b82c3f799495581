package journal

import (
	"sort"
	"strings"
)

// SortEntriesAscending sorts entries by created_at ascending, breaking
// timestamp ties by ID ascending so the order is total and deterministic.
func SortEntriesAscending(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

// SortEntriesDescending sorts entries by created_at descending, breaking
// timestamp ties by ID descending.
func SortEntriesDescending(entries []*Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}

// FilterEntriesByTags returns entries that carry at least one of the given
// tags. Matching is case-insensitive against the normalized stored tags;
// an empty tag list matches everything.
func FilterEntriesByTags(entries []*Entry, tags []string) []*Entry {
	if len(tags) == 0 {
		return entries
	}

	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToLower(strings.TrimSpace(t))] = true
	}

	var result []*Entry
	for _, entry := range entries {
		for _, t := range entry.Tags {
			if want[t] {
				result = append(result, entry)
				break
			}
		}
	}
	return result
}
