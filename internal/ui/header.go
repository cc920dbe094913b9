package ui

import (
	"fmt"
	"strings"
)

const (
	headerHeight = 3
	footerHeight = 1
)

// renderHeader renders the hero line and the community line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var hero strings.Builder
	hero.WriteString(styles.Hero.Render(m.snapshot.Source.Title))
	if m.loading {
		hero.WriteString(" ")
		hero.WriteString(styles.AccentText.Render(m.spin.View()))
	}
	if m.snapshot.IsOffline() {
		hero.WriteString("  ")
		hero.WriteString(styles.DangerText.Render("OFFLINE"))
	} else if m.snapshot.LastError != nil {
		hero.WriteString("  ")
		hero.WriteString(styles.WarningText.Render("stale data"))
	}

	counts := m.renderCounts()
	line1 := hero.String()
	if counts != "" {
		line1 += "   " + counts
	}

	line2 := m.renderCommunityLine()

	return styles.Header.Width(maxInt(m.width, 0)).Render(line1) + "\n" +
		styles.Header.Width(maxInt(m.width, 0)).Render(line2)
}

// renderCounts renders the per-category item counters.
func (m Model) renderCounts() string {
	if len(m.snapshot.Counts) == 0 {
		return ""
	}
	styles := m.theme.Styles()
	parts := make([]string, 0, 4)
	for _, name := range []string{"mods", "maps", "blog", "wiki"} {
		count, ok := m.snapshot.Counts[name]
		if !ok {
			continue
		}
		label := fmt.Sprintf("%s %d", name, count)
		if name == m.snapshot.Source.Name {
			parts = append(parts, styles.AccentText.Render(label))
		} else {
			parts = append(parts, styles.MutedText.Render(label))
		}
	}
	return strings.Join(parts, styles.FaintText.Render(" · "))
}

// renderCommunityLine renders the social panel and trending keywords.
func (m Model) renderCommunityLine() string {
	styles := m.theme.Styles()
	var parts []string

	for _, link := range m.snapshot.Social {
		label := link.Link.Name
		if link.Count != "" {
			label += " " + link.Count
		}
		parts = append(parts, styles.MutedText.Render(label))
	}

	if len(m.snapshot.Keywords) > 0 {
		shown := m.snapshot.Keywords
		if len(shown) > 6 {
			shown = shown[:6]
		}
		parts = append(parts, styles.FaintText.Render("trending: "+strings.Join(shown, ", ")))
	}

	if len(parts) == 0 {
		return styles.FaintText.Render("hyteserve")
	}
	return strings.Join(parts, styles.FaintText.Render("  |  "))
}

// renderFooter renders key hints, pagination state, and transient status.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	if m.status != "" {
		return styles.Footer.Width(maxInt(m.width, 0)).Render(styles.AccentText.Render(m.status))
	}

	var hints string
	switch m.currentView {
	case ViewDetail:
		hints = "esc back · c copy link · [/] history · j/k scroll · ? help"
	case ViewActivity:
		hints = "esc back · j/k scroll · ? help"
	default:
		if m.searching {
			hints = "enter apply · esc clear"
		} else if m.showTags {
			hints = "space toggle · x clear · t close · j/k move"
		} else {
			hints = "1-4 catalogs · / search · t tags · enter open · c copy link · ? help"
		}
	}

	pageInfo := ""
	if pages := m.pager.TotalPages; pages > 1 && m.currentView == ViewList {
		pageInfo = fmt.Sprintf("  page %d/%d", m.pager.Page+1, pages)
	}

	return styles.Footer.Width(maxInt(m.width, 0)).Render(hints + pageInfo)
}
