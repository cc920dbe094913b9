package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchSocialCounts_DegradesPerEntry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/discord":
			_, _ = w.Write([]byte(`{"approximate_member_count": 12850}`))
		case "/nested":
			_, _ = w.Write([]byte(`{"data": {"stats": {"members": 42}}}`))
		case "/broken":
			http.Error(w, "nope", http.StatusBadGateway)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	links := []Link{
		{Name: "Discord", CountEndpoint: server.URL + "/discord", CountField: "approximate_member_count"},
		{Name: "Forum", CountEndpoint: server.URL + "/nested", CountField: "data.stats.members"},
		{Name: "Broken", CountEndpoint: server.URL + "/broken", CountField: "count"},
		{Name: "PayPal", URL: "https://paypal.me/2players1Gamer"}, // no endpoint at all
	}

	counts := c.FetchSocialCounts(context.Background(), links)
	if len(counts) != 4 {
		t.Fatalf("len(counts) = %d, want every entry preserved", len(counts))
	}
	if counts[0].Count != "12.8k" {
		t.Fatalf("Discord count = %q, want 12.8k", counts[0].Count)
	}
	if counts[1].Count != "42" {
		t.Fatalf("Forum count = %q, want 42", counts[1].Count)
	}
	if counts[2].Count != PlaceholderCount {
		t.Fatalf("Broken count = %q, want placeholder", counts[2].Count)
	}
	if counts[3].Count != PlaceholderCount {
		t.Fatalf("PayPal count = %q, want placeholder", counts[3].Count)
	}
	if counts[2].Link.Name != "Broken" {
		t.Fatalf("failed entry dropped: %#v", counts)
	}
}

func TestFieldPath(t *testing.T) {
	payload := map[string]any{
		"a": map[string]any{"b": float64(7)},
		"s": "texty",
		"x": []any{1, 2},
	}
	if got, ok := fieldPath(payload, "a.b"); !ok || got != "7" {
		t.Fatalf("fieldPath(a.b) = %q, %v", got, ok)
	}
	if got, ok := fieldPath(payload, "s"); !ok || got != "texty" {
		t.Fatalf("fieldPath(s) = %q, %v", got, ok)
	}
	if _, ok := fieldPath(payload, "a.missing"); ok {
		t.Fatalf("fieldPath(a.missing) should fail")
	}
	if _, ok := fieldPath(payload, "x"); ok {
		t.Fatalf("fieldPath(x) should fail on non-scalar leaf")
	}
	if _, ok := fieldPath(payload, "x.y"); ok {
		t.Fatalf("fieldPath(x.y) should fail traversing a non-object")
	}
}
