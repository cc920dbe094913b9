package ui

import (
	"fmt"
	"strings"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

// renderList renders the card list for the current catalog, either as flat
// rows (mods, maps) or grouped article cards (blog, wiki).
func (m Model) renderList() string {
	styles := m.theme.Styles()
	var b strings.Builder

	if m.searching || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	if m.showTags {
		b.WriteString(m.renderTagPanel())
		b.WriteString("\n")
	}

	if !m.snapshot.HasCatalog {
		if m.snapshot.LastError != nil {
			b.WriteString(styles.DangerText.Render("This catalog could not be loaded."))
			b.WriteString("\n")
			b.WriteString(styles.MutedText.Render("Press r to retry, or 1-4 to browse another catalog."))
		} else {
			b.WriteString(styles.MutedText.Render("Loading catalog..."))
		}
		return b.String()
	}

	page := m.pageItems()
	if len(page) == 0 {
		b.WriteString(styles.MutedText.Render("No items found."))
		return b.String()
	}

	if m.snapshot.Source.Articles() {
		b.WriteString(m.renderArticleRows(page))
	} else {
		b.WriteString(m.renderItemRows(page))
	}

	if m.pager.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(m.pager.View()))
	}

	return b.String()
}

// renderItemRows renders flat mod/map rows.
func (m Model) renderItemRows(page []int) string {
	var b strings.Builder
	for row, idx := range page {
		b.WriteString(m.renderRow(row, idx))
		b.WriteString("\n")
	}
	return b.String()
}

// renderArticleRows renders blog/wiki rows under group headings. Groups keep
// the order they first appear in; ungrouped entries fall into the catalog's
// default group.
func (m Model) renderArticleRows(page []int) string {
	styles := m.theme.Styles()
	var b strings.Builder
	order, grouped := articleGroups(m.snapshot.Items, page, m.snapshot.Source.DefaultGroup)

	for gi, group := range order {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.GroupTitle.Render(group))
		b.WriteString("\n")
		for _, pos := range grouped[group] {
			b.WriteString(m.renderRow(pos, page[pos]))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// articleGroups buckets page positions by group heading, keeping the order
// groups first appear in. Ungrouped entries fall into fallback.
func articleGroups(items []catalog.Item, page []int, fallback string) ([]string, map[string][]int) {
	var order []string
	grouped := make(map[string][]int)
	for pos, idx := range page {
		group := strings.TrimSpace(items[idx].Group)
		if group == "" {
			group = fallback
		}
		if _, seen := grouped[group]; !seen {
			order = append(order, group)
		}
		// Positions rather than indexes so the cursor lines up on the page.
		grouped[group] = append(grouped[group], pos)
	}
	return order, grouped
}

// renderRow renders one card row. row is the position on the current page,
// idx the snapshot index.
func (m Model) renderRow(row, idx int) string {
	styles := m.theme.Styles()
	item := m.snapshot.Items[idx]

	title := truncate(item.Title, maxInt(m.width-30, 20))
	line := title

	if m.snapshot.HasNewest && catalog.IsNew(item.Date, m.snapshot.Newest) {
		line += " " + styles.NewBadge.Render("NEW")
	}

	if item.Author != "" {
		line += " " + styles.MutedText.Render("by "+item.Author)
	}
	if item.Date != "" {
		line += " " + styles.FaintText.Render(item.Date)
	}

	for i, tag := range item.Tags {
		if i >= 3 {
			line += " " + styles.FaintText.Render(fmt.Sprintf("+%d", len(item.Tags)-i))
			break
		}
		line += " " + styles.TagChip.Render(strings.ToUpper(tag))
	}

	cursor := "  "
	if row == m.selectedRow {
		cursor = styles.AccentText.Render("> ")
		line = cursor + styles.Selected.Render(" "+title+" ") + strings.TrimPrefix(line, title)
	} else {
		line = cursor + line
	}

	if desc := strings.TrimSpace(item.Description); desc != "" {
		line += "\n    " + styles.MutedText.Render(truncate(desc, maxInt(m.width-8, 20)))
	}
	return line
}

// renderTagPanel renders the tag filter checkboxes with counts.
func (m Model) renderTagPanel() string {
	styles := m.theme.Styles()
	if len(m.tagCounts) == 0 {
		return styles.Panel.Render(styles.MutedText.Render("No tags in this catalog."))
	}

	var b strings.Builder
	b.WriteString(styles.AccentText.Render("Filter by tag"))
	b.WriteString("\n")
	for i, tc := range m.tagCounts {
		_, active := m.filter.Tags[tc.Tag]
		box := ternary(active, "[x]", "[ ]")
		label := fmt.Sprintf("%s %s (%d)", box, tc.Tag, tc.Count)
		switch {
		case i == m.tagCursor:
			b.WriteString(styles.Selected.Render(label))
		case active:
			b.WriteString(styles.AccentText.Render(label))
		default:
			b.WriteString(styles.Text.Render(label))
		}
		b.WriteString("\n")
	}
	return styles.PanelFocus.Render(strings.TrimRight(b.String(), "\n"))
}
