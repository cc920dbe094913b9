package catalog

import "time"

// NewestDate returns the most recent parseable date across the collection.
// Items with missing or unparseable dates are ignored. The second return
// value is false when no item carries a parseable date.
func NewestDate(items []Item) (time.Time, bool) {
	var newest time.Time
	found := false
	for _, item := range items {
		t, ok := item.ParsedDate()
		if !ok {
			continue
		}
		if !found || t.After(newest) {
			newest = t
			found = true
		}
	}
	return newest, found
}

// IsNew reports whether a date string matches the newest date exactly.
// A zero baseline means no item in the collection had a date, so nothing is
// flagged. Items sharing the newest date are all flagged.
func IsNew(date string, newest time.Time) bool {
	if newest.IsZero() {
		return false
	}
	t, ok := ParseDate(date)
	if !ok {
		return false
	}
	return t.Equal(newest)
}
