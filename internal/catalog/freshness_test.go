package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewestDate(t *testing.T) {
	items := []Item{
		{Title: "Older", Date: "2024-01-01"},
		{Title: "Newer", Date: "2024-02-01"},
	}

	newest, ok := NewestDate(items)
	require.True(t, ok)
	want, _ := time.Parse("2006-01-02", "2024-02-01")
	assert.True(t, newest.Equal(want), "newest = %v, want %v", newest, want)

	assert.False(t, IsNew(items[0].Date, newest))
	assert.True(t, IsNew(items[1].Date, newest))
}

func TestNewestDate_IgnoresUnparseable(t *testing.T) {
	items := []Item{
		{Date: "not-a-date"},
		{Date: ""},
		{Date: "2023-06-15"},
		{Date: "soonish"},
	}

	newest, ok := NewestDate(items)
	require.True(t, ok)
	want, _ := time.Parse("2006-01-02", "2023-06-15")
	assert.True(t, newest.Equal(want))
}

func TestNewestDate_AbsentWhenNothingParses(t *testing.T) {
	_, ok := NewestDate([]Item{{Date: "garbage"}, {}})
	assert.False(t, ok)

	_, ok = NewestDate(nil)
	assert.False(t, ok)
}

func TestIsNew_SharedDateFlagsAll(t *testing.T) {
	items := []Item{
		{Date: "2024-03-03"},
		{Date: "2024-03-03"},
		{Date: "2024-03-03"},
	}
	newest, ok := NewestDate(items)
	require.True(t, ok)
	for _, item := range items {
		assert.True(t, IsNew(item.Date, newest))
	}
}

func TestIsNew_FalseWithoutBaseline(t *testing.T) {
	assert.False(t, IsNew("2024-03-03", time.Time{}))
	assert.False(t, IsNew("", time.Time{}))
	assert.False(t, IsNew("", time.Now()))
	assert.False(t, IsNew("bogus", time.Now()))
}

func TestParseDate_Layouts(t *testing.T) {
	for _, value := range []string{
		"2024-02-01",
		"2024-02-01 10:30:00",
		"2024-02-01T10:30:00Z",
		"2024-02-01T10:30:00.5Z",
	} {
		_, ok := ParseDate(value)
		assert.True(t, ok, "ParseDate(%q) should succeed", value)
	}
}
