package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFetchAggregate_AllSettled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/modlist.json":
			_, _ = w.Write([]byte(`[{"title":"A","tags":["pvp","rpg","ui"]},{"title":"B","tags":[" pvp "]}]`))
		case "/maplist.json":
			http.Error(w, "down", http.StatusInternalServerError) // isolated failure
		case "/bloglist.json":
			_, _ = w.Write([]byte(`[{"title":"Post","tags":["roadmap"]}]`))
		case "/wikihytale.json":
			_, _ = w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	agg := c.FetchAggregate(context.Background())

	wantCounts := map[string]int{"mods": 2, "blog": 1, "wiki": 0}
	if diff := cmp.Diff(wantCounts, agg.Counts); diff != "" {
		t.Fatalf("counts mismatch (-want +got):\n%s", diff)
	}

	// Seeds always present, short tags dropped ("ui"), whitespace trimmed,
	// duplicates collapsed, output sorted.
	wantKeywords := []string{"Hytale", "HyteServe", "Modding", "pvp", "roadmap", "rpg"}
	if diff := cmp.Diff(wantKeywords, agg.Keywords); diff != "" {
		t.Fatalf("keywords mismatch (-want +got):\n%s", diff)
	}
}
