package ui

import (
	"fmt"
	"strings"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

// renderDetail renders the expanded card view.
func (m Model) renderDetail() string {
	return m.detailViewport.View()
}

// updateDetailViewport rebuilds the detail viewport content for the
// highlighted card.
func (m *Model) updateDetailViewport() {
	if !m.ready || m.currentView != ViewDetail {
		return
	}
	item := m.selectedItem()
	if item == nil {
		m.detailViewport.SetContent("")
		return
	}
	m.detailViewport.SetContent(m.renderCard(*item))
}

// renderCard builds the full card body: metadata header, markdown body, and
// mode-specific sections.
func (m Model) renderCard(item catalog.Item) string {
	styles := m.theme.Styles()
	articles := m.snapshot.Source.Articles()

	var b strings.Builder

	b.WriteString(styles.Hero.Render(item.Title))
	b.WriteString("\n")

	var meta []string
	if item.Author != "" {
		meta = append(meta, "by "+item.Author)
	}
	if item.Date != "" {
		meta = append(meta, item.Date)
	}
	if m.snapshot.HasNewest && catalog.IsNew(item.Date, m.snapshot.Newest) {
		meta = append(meta, styles.NewBadge.Render("NEW"))
	}
	if len(meta) > 0 {
		b.WriteString(styles.MutedText.Render(strings.Join(meta, "  ·  ")))
		b.WriteString("\n")
	}

	if articles {
		if item.Category != "" {
			b.WriteString(styles.TagChip.Render(strings.ToUpper(item.Category)))
			b.WriteString("\n")
		}
	} else if item.Version != "" {
		b.WriteString(styles.TagChip.Render("v" + item.Version))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Render(ternary(articles, "ARTICLE CONTENT", "DESCRIPTION")))
	b.WriteString("\n")
	b.WriteString(m.renderBody(item))

	if !articles && item.DownloadURL != "" {
		b.WriteString("\n")
		b.WriteString(styles.SuccessText.Render("Download: "))
		b.WriteString(styles.Text.Render(catalog.DirectDownloadURL(item.DownloadURL)))
		b.WriteString("\n")
	}

	if len(item.Gallery) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Render(fmt.Sprintf("GALLERY (%d)", len(item.Gallery))))
		b.WriteString("\n")
		for _, url := range item.Gallery {
			b.WriteString(styles.MutedText.Render("  " + url))
			b.WriteString("\n")
		}
	}

	icon := item.Icon
	if icon == "" && m.config != nil {
		icon = m.config.PlaceholderIcon
	}
	if icon != "" {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(ternary(articles, "hero: ", "icon: ") + icon))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("permalink: " + m.permalinkFor(item)))
	b.WriteString("\n")

	return b.String()
}

// renderBody renders the card body as markdown. Rendering failures fall back
// to the raw text.
func (m Model) renderBody(item catalog.Item) string {
	body := item.Body()
	if strings.TrimSpace(body) == "" {
		return m.theme.Styles().FaintText.Render("No description provided.") + "\n"
	}
	if m.renderer == nil {
		return body + "\n"
	}
	rendered, err := m.renderer.Render(body)
	if err != nil {
		return body + "\n"
	}
	return rendered
}

func (m Model) permalinkFor(item catalog.Item) string {
	if m.config == nil {
		return item.PermalinkSlug()
	}
	return m.config.Permalink(item.PermalinkSlug())
}
