package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

// Fetcher defines the interface for loading catalog and auxiliary documents.
// It is implemented by *Client and can be substituted in tests.
type Fetcher interface {
	FetchCatalog(ctx context.Context, src Source) ([]catalog.Item, error)
	FetchSocialLinks(ctx context.Context) ([]Link, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client loads JSON documents from a data root: either an http(s) base URL
// or a local directory.
type Client struct {
	baseURL   *url.URL // nil for local roots
	dir       string   // empty for remote roots
	http      *http.Client
	userAgent string
}

const (
	defaultDataRoot  = "./data"
	defaultUserAgent = "hyteserve/0.1"
	requestTimeout   = 10 * time.Second
	socialFile       = "sociallinks.json"
)

// NewClient builds a Client for the given data root. An empty root uses the
// ./data directory next to the binary's working directory.
func NewClient(root string) (*Client, error) {
	trimmed := strings.TrimSpace(root)
	if trimmed == "" {
		trimmed = defaultDataRoot
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		base, err := url.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse data url %q: %w", root, err)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		base.RawQuery = ""
		base.Fragment = ""
		return &Client{
			baseURL:   base,
			http:      &http.Client{Timeout: requestTimeout},
			userAgent: defaultUserAgent,
		}, nil
	}
	dir, err := filepath.Abs(trimmed)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir %q: %w", root, err)
	}
	return &Client{
		dir:       dir,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}, nil
}

// Local reports whether the client reads from a local directory.
func (c *Client) Local() bool { return c != nil && c.dir != "" }

// Dir returns the local data directory, or empty for remote roots.
func (c *Client) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// FetchCatalog retrieves and decodes the JSON catalog for a source.
func (c *Client) FetchCatalog(ctx context.Context, src Source) ([]catalog.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var items []catalog.Item
	if err := c.fetchJSON(ctx, src.File, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchSocialLinks retrieves the social panel feed. A missing feed is not an
// error; it yields an empty panel.
func (c *Client) FetchSocialLinks(ctx context.Context) ([]Link, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var links []Link
	if err := c.fetchJSON(ctx, socialFile, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) fetchJSON(ctx context.Context, file string, dest any) error {
	if c.dir != "" {
		return c.readLocal(file, dest)
	}
	return c.readRemote(ctx, file, dest)
}

func (c *Client) readLocal(file string, dest any) error {
	data, err := os.ReadFile(filepath.Join(c.dir, file))
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}

func (c *Client) readRemote(ctx context.Context, file string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: file})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", file, resp.StatusCode)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", file, err)
	}
	return nil
}

// fetchRawJSON retrieves an arbitrary absolute URL into dest. Used for the
// social panel's live-count endpoints, which point outside the data root.
func (c *Client) fetchRawJSON(ctx context.Context, rawURL string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("count endpoint returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode count payload: %w", err)
	}
	return nil
}
