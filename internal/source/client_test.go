package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

func TestNewClient_LocalAndRemoteRoots(t *testing.T) {
	c, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if !c.Local() {
		t.Fatalf("empty root should resolve to a local directory")
	}
	if !strings.HasSuffix(c.Dir(), "data") {
		t.Fatalf("Dir() = %q, want default data dir", c.Dir())
	}

	c, err = NewClient("https://example.com/hyteserve")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if c.Local() {
		t.Fatalf("http root should not be local")
	}
}

func TestClient_FetchCatalogRemote(t *testing.T) {
	t.Parallel()

	var gotPath, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]catalog.Item{
			{Title: "Ancient Arena", Author: "Moss", Tags: []string{"pvp"}},
			{Title: "Builder Kit", Author: "Quill"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	items, err := c.FetchCatalog(ctx, Source{Name: "mods", File: "modlist.json"})
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Ancient Arena" {
		t.Fatalf("items = %#v, want 2 items", items)
	}
	if gotPath != "/modlist.json" {
		t.Fatalf("request path = %q, want /modlist.json", gotPath)
	}
	if !strings.HasPrefix(gotUserAgent, "hyteserve/") {
		t.Fatalf("User-Agent = %q, want hyteserve/*", gotUserAgent)
	}
}

func TestClient_FetchCatalogLocal(t *testing.T) {
	dir := t.TempDir()
	payload := `[{"title":"Quiet Village","author":"Sparrow","extraField":"ignored"}]`
	if err := os.WriteFile(filepath.Join(dir, "maplist.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := NewClient(dir)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	items, err := c.FetchCatalog(context.Background(), Source{Name: "maps", File: "maplist.json"})
	if err != nil {
		t.Fatalf("FetchCatalog returned error: %v", err)
	}
	if len(items) != 1 || items[0].Author != "Sparrow" {
		t.Fatalf("items = %#v, want Sparrow's map", items)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/modlist.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchCatalog(context.Background(), Source{File: "modlist.json"})
	if err == nil || !strings.Contains(err.Error(), "decode modlist.json") {
		t.Fatalf("error = %v, want decode error", err)
	}

	_, err = c.FetchCatalog(context.Background(), Source{File: "maplist.json"})
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("error = %v, want status 500 error", err)
	}
}

func TestClient_FetchCatalogMissingLocalFile(t *testing.T) {
	c, err := NewClient(t.TempDir())
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchCatalog(context.Background(), Source{File: "modlist.json"})
	if err == nil {
		t.Fatalf("FetchCatalog returned nil error for missing file")
	}
}

func TestSources_FixedSet(t *testing.T) {
	if len(All) != 4 {
		t.Fatalf("len(All) = %d, want 4", len(All))
	}
	if src, ok := ByName("wiki"); !ok || src.File != "wikihytale.json" || !src.Articles() {
		t.Fatalf("ByName(wiki) = %#v, %v", src, ok)
	}
	if src, ok := ByFile("bloglist.json"); !ok || src.Name != "blog" || src.DefaultGroup != "Recent Updates" {
		t.Fatalf("ByFile(bloglist.json) = %#v, %v", src, ok)
	}
	if _, ok := ByName("nope"); ok {
		t.Fatalf("ByName(nope) should not resolve")
	}
	if Default().Name != "mods" {
		t.Fatalf("Default() = %q, want mods", Default().Name)
	}
}
