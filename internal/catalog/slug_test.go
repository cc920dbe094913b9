package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Cool Mod!", "my-cool-mod"},
		{"  Already--Hyphenated  ", "already-hyphenated"},
		{"UPPER lower 123", "upper-lower-123"},
		{"???", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestPermalinkSlug_PrefersExplicitSlug(t *testing.T) {
	assert.Equal(t, "custom-slug", Item{Title: "A Title", Slug: "Custom Slug"}.PermalinkSlug())
	assert.Equal(t, "a-title", Item{Title: "A Title"}.PermalinkSlug())
}

func TestResolveSlug(t *testing.T) {
	items := []Item{
		{Title: "Ancient Arena"},
		{Title: "Builder Kit"},
		{Title: "Builder Kit"}, // duplicate slug resolves to the first match
	}

	assert.Equal(t, 0, ResolveSlug(items, "ancient-arena"))
	assert.Equal(t, 1, ResolveSlug(items, "builder-kit"))
	assert.Equal(t, -1, ResolveSlug(items, "missing"))
	assert.Equal(t, -1, ResolveSlug(items, ""))
	assert.Equal(t, -1, ResolveSlug(nil, "anything"))
}
