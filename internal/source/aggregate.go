package source

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

// seedKeywords are always present in the aggregated keyword set.
var seedKeywords = []string{"Hytale", "Modding", "HyteServe"}

// minKeywordLen filters out tags too short to be meaningful keywords.
const minKeywordLen = 3

// Aggregate holds the cross-catalog rollups: the deduplicated keyword set
// and the item count per source. Sources that failed to fetch are simply
// absent from Counts; partial results are the norm, not an error.
type Aggregate struct {
	Keywords []string
	Counts   map[string]int
}

// FetchAggregate fetches every catalog concurrently and folds the results.
// The join is all-settled: individual fetch failures are tolerated and never
// block or corrupt the other sources' contributions.
func (c *Client) FetchAggregate(ctx context.Context) Aggregate {
	type result struct {
		src   Source
		items []catalog.Item
		err   error
	}

	results := make([]result, len(All))
	var wg sync.WaitGroup
	for i, src := range All {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			items, err := c.FetchCatalog(ctx, src)
			results[i] = result{src: src, items: items, err: err}
		}(i, src)
	}
	wg.Wait()

	keywords := make(map[string]struct{})
	for _, seed := range seedKeywords {
		keywords[seed] = struct{}{}
	}
	counts := make(map[string]int)
	for _, r := range results {
		if r.err != nil {
			continue
		}
		counts[r.src.Name] = len(r.items)
		for _, item := range r.items {
			for _, tag := range item.Tags {
				tag = strings.TrimSpace(tag)
				if len(tag) >= minKeywordLen {
					keywords[tag] = struct{}{}
				}
			}
		}
	}

	out := Aggregate{Counts: counts, Keywords: make([]string, 0, len(keywords))}
	for kw := range keywords {
		out.Keywords = append(out.Keywords, kw)
	}
	sort.Strings(out.Keywords)
	return out
}
