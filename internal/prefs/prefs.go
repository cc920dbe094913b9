// Package prefs handles HyteServe user preferences persistence.
// Preferences are stored in ~/.config/hyteserve/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences.
type Prefs struct {
	Theme string `toml:"theme"`
	// Source is the last browsed catalog, restored on the next start.
	Source string `toml:"source"`
}

const (
	defaultPrefsPath = "~/.config/hyteserve/prefs.toml"
	defaultTheme     = "Hytale"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	resolved, err := expandPath(defaultPrefsPath)
	if err != nil {
		return defaultPrefsPath
	}
	return resolved
}

// Load reads preferences from the given path. It never fails: a missing or
// unreadable file degrades to defaults.
func Load(path string) Prefs {
	prefsOut := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefsOut
	}

	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefsOut
	}
	if err := toml.Unmarshal(bytes, &prefsOut); err != nil {
		return Prefs{Theme: defaultTheme}
	}
	if strings.TrimSpace(prefsOut.Theme) == "" {
		prefsOut.Theme = defaultTheme
	}
	return prefsOut
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
