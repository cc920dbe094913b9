package source

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Link is one entry of the social panel feed (sociallinks.json).
type Link struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
	// CountEndpoint optionally names a JSON endpoint carrying a live member
	// or follower count, with CountField as a dot-separated path into its
	// response.
	CountEndpoint string `json:"countEndpoint"`
	CountField    string `json:"countField"`
}

// LinkCount pairs a social link with its resolved live count. Count holds
// PlaceholderCount when the entry has no endpoint or its fetch failed; the
// entry itself is never dropped.
type LinkCount struct {
	Link  Link
	Count string
}

// PlaceholderCount is shown for entries whose live count is unavailable.
const PlaceholderCount = "—"

// FetchSocialCounts resolves live counts for every link concurrently. Each
// entry degrades independently; one failing endpoint never affects another.
func (c *Client) FetchSocialCounts(ctx context.Context, links []Link) []LinkCount {
	out := make([]LinkCount, len(links))
	var wg sync.WaitGroup
	for i, link := range links {
		out[i] = LinkCount{Link: link, Count: PlaceholderCount}
		if link.CountEndpoint == "" || link.CountField == "" {
			continue
		}
		wg.Add(1)
		go func(i int, link Link) {
			defer wg.Done()
			var payload map[string]any
			if err := c.fetchRawJSON(ctx, link.CountEndpoint, &payload); err != nil {
				return
			}
			if count, ok := fieldPath(payload, link.CountField); ok {
				out[i].Count = count
			}
		}(i, link)
	}
	wg.Wait()
	return out
}

// fieldPath walks a dot-separated path through a decoded JSON object and
// formats the leaf as a count string.
func fieldPath(payload map[string]any, path string) (string, bool) {
	var value any = payload
	for _, part := range strings.Split(path, ".") {
		obj, ok := value.(map[string]any)
		if !ok {
			return "", false
		}
		value, ok = obj[part]
		if !ok {
			return "", false
		}
	}
	switch v := value.(type) {
	case float64:
		return formatCount(int64(v)), true
	case string:
		if v == "" {
			return "", false
		}
		return v, true
	default:
		return "", false
	}
}

// formatCount abbreviates large counts for the panel (12850 -> "12.8k").
func formatCount(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%.1fk", float64(n)/1000)
}
