package catalog

import "time"

// Item is one record of a catalog JSON document. Unknown fields in the
// source documents are ignored by the decoder. Identity within a loaded
// collection is positional: the index into the collection as loaded.
type Item struct {
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Icon            string   `json:"icon"`
	Date            string   `json:"date"`
	Tags            []string `json:"tags"`
	Category        string   `json:"category"`
	Group           string   `json:"group"`
	Version         string   `json:"version"`
	DownloadURL     string   `json:"downloadUrl"`
	Gallery         []string `json:"gallery"`
	Slug            string   `json:"slug"`
}

// Body returns the detail-view body text: the long description when present,
// otherwise the short description.
func (i Item) Body() string {
	if i.LongDescription != "" {
		return i.LongDescription
	}
	return i.Description
}

// ParsedDate returns the item's date as time.Time. The second return value is
// false when the date field is missing or unparseable.
func (i Item) ParsedDate() (time.Time, bool) {
	return ParseDate(i.Date)
}

// ParseDate parses a catalog date string. Catalog authors use a mix of plain
// dates and full timestamps, so several layouts are accepted.
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
