package ui

import "testing"

func TestGetThemeFallsBackToDefault(t *testing.T) {
	theme := GetTheme("NoSuchTheme")
	if theme.Name != "Hytale" {
		t.Errorf("GetTheme fallback = %q, want Hytale", theme.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Errorf("cycle did not wrap: ended on %q", name)
	}
	for _, want := range ThemeNames() {
		if !seen[want] {
			t.Errorf("theme %q never visited", want)
		}
	}
}

func TestNextThemeUnknownStartsOver(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != themeOrder[0] {
		t.Errorf("NextTheme = %q, want %q", got, themeOrder[0])
	}
}

func TestThemesHaveCompletePalettes(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := GetTheme(name)
		if theme.Background == "" || theme.Text == "" || theme.Accent == "" {
			t.Errorf("theme %q has empty palette entries: %+v", name, theme)
		}
	}
}
