package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Catalogs",
			items: []helpItem{
				{"1/2/3/4", "Mods/Maps/Blog/Wiki"},
				{"r", "Reload current catalog"},
				{"a", "Activity log"},
			},
		},
		{
			title: "Browsing",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"h/l", "Previous/next page"},
				{"g/G", "First/last page"},
				{"enter", "Open card"},
				{"esc", "Back / clear filter"},
				{"[/]", "History back/forward"},
			},
		},
		{
			title: "Filtering",
			items: []helpItem{
				{"/", "Search title or author"},
				{"t", "Tag filter panel"},
				{"space", "Toggle tag"},
				{"x", "Clear tags"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"c", "Copy share link"},
				{"T", "Cycle theme"},
				{"?", "Toggle help"},
				{"e/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(40)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
