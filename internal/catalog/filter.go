package catalog

import (
	"sort"
	"strings"
)

// Filter captures the current search text and active tag selection. The zero
// value matches everything.
type Filter struct {
	// Query is the search text, stored lowercase. Empty means no text filter.
	Query string
	// Tags holds the active tag selection. Empty means no tag filter.
	Tags map[string]struct{}
}

// Empty reports whether the filter matches every item.
func (f Filter) Empty() bool {
	return f.Query == "" && len(f.Tags) == 0
}

// Matches reports whether a single item passes the filter. The search text
// must appear as a case-insensitive substring of the title or author, and
// the item must carry at least one active tag. Both conditions combine with
// AND; tag matching is OR across the selection.
func (f Filter) Matches(item Item) bool {
	if f.Query != "" {
		title := strings.ToLower(item.Title)
		author := strings.ToLower(item.Author)
		if !strings.Contains(title, f.Query) && !strings.Contains(author, f.Query) {
			return false
		}
	}
	if len(f.Tags) == 0 {
		return true
	}
	for _, tag := range item.Tags {
		if _, ok := f.Tags[tag]; ok {
			return true
		}
	}
	return false
}

// Apply returns the items passing the filter as a fresh slice, preserving the
// relative order of the input. The input is never mutated.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// ApplyIndexes is Apply in terms of positional identity: it returns the
// indexes of the passing items within the input collection.
func (f Filter) ApplyIndexes(items []Item) []int {
	out := make([]int, 0, len(items))
	for i, item := range items {
		if f.Matches(item) {
			out = append(out, i)
		}
	}
	return out
}

// TagCount pairs a tag with its number of occurrences across a collection.
type TagCount struct {
	Tag   string
	Count int
}

// TagCounts aggregates every tag across every item's tag list, sorted
// alphabetically. Tags are counted as given, case-sensitive.
func TagCounts(items []Item) []TagCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, tag := range item.Tags {
			counts[tag]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Tag < out[j].Tag })
	return out
}
