package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings HyteServe needs to locate and present its
// catalogs.
type Config struct {
	// DataRoot is where the JSON documents live: a local directory or an
	// http(s) base URL.
	DataRoot string
	// ShareURL is the public site base used to build shareable detail
	// permalinks (?card=<slug> is appended).
	ShareURL string
	// PageSize is the fixed list page size.
	PageSize int
	// PlaceholderIcon substitutes for missing item images at render time.
	PlaceholderIcon string
	// LogDir is where the activity log is written.
	LogDir string
}

const (
	defaultConfigPath  = "~/.config/hyteserve/config.toml"
	defaultLogDir      = "~/.local/share/hyteserve"
	defaultShareURL    = "https://tinyplayerss.github.io/hyteserve/"
	defaultPageSize    = 10
	defaultPlaceholder = "assets/placeholder.png"
)

// Load locates and parses the config file, falling back to defaults when
// missing. An absent file is not an error; a present but malformed one is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataRoot        string `toml:"data_root"`
		ShareURL        string `toml:"share_url"`
		PageSize        int    `toml:"page_size"`
		PlaceholderIcon string `toml:"placeholder_icon"`
		LogDir          string `toml:"log_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.DataRoot); v != "" {
		cfg.DataRoot = v
	}
	if v := strings.TrimSpace(raw.ShareURL); v != "" {
		cfg.ShareURL = v
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if v := strings.TrimSpace(raw.PlaceholderIcon); v != "" {
		cfg.PlaceholderIcon = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = v
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	return cfg, nil
}

func defaults() Config {
	return Config{
		ShareURL:        defaultShareURL,
		PageSize:        defaultPageSize,
		PlaceholderIcon: defaultPlaceholder,
		LogDir:          mustExpand(defaultLogDir),
	}
}

// LogPath returns the path of the activity log file.
func (c Config) LogPath() string {
	dir := c.LogDir
	if strings.TrimSpace(dir) == "" {
		dir = mustExpand(defaultLogDir)
	}
	return filepath.Join(dir, "hyteserve.log")
}

// Permalink builds the shareable URL for a detail-view slug.
func (c Config) Permalink(slug string) string {
	base := strings.TrimSpace(c.ShareURL)
	if base == "" {
		base = defaultShareURL
	}
	if slug == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "card=" + slug
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
