package catalog

import (
	"regexp"
	"strings"
)

var slugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercase, every run
// of non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Deterministic; collisions are tolerated only up
// to exact string equality.
func Slugify(s string) string {
	slug := slugRuns.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

// PermalinkSlug returns the slug used in shareable detail links: the
// explicit slug field when present, otherwise one derived from the title.
func (i Item) PermalinkSlug() string {
	if i.Slug != "" {
		return Slugify(i.Slug)
	}
	return Slugify(i.Title)
}

// ResolveSlug finds the first item whose permalink slug matches, returning
// its index into the collection, or -1 when no item matches.
func ResolveSlug(items []Item, slug string) int {
	if slug == "" {
		return -1
	}
	for i, item := range items {
		if item.PermalinkSlug() == slug {
			return i
		}
	}
	return -1
}
