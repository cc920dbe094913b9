package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinyplayerss/hyteserve/internal/catalog"
)

// route is one browsing position: a catalog, optionally narrowed to a single
// card. An empty card means the list view.
type route struct {
	source string
	card   string
}

// pushRoute records a new position, truncating any forward history.
func (m *Model) pushRoute(r route) {
	if m.histPos < len(m.history)-1 {
		m.history = m.history[:m.histPos+1]
	}
	if len(m.history) > 0 && m.history[len(m.history)-1] == r {
		return
	}
	m.history = append(m.history, r)
	m.histPos = len(m.history) - 1
}

// currentRoute returns the active position.
func (m Model) currentRoute() route {
	if m.histPos < 0 || m.histPos >= len(m.history) {
		return route{source: m.snapshot.Source.Name}
	}
	return m.history[m.histPos]
}

// openDetail shows the card at the given snapshot index and records it in
// the history.
func (m *Model) openDetail(idx int) {
	if idx < 0 || idx >= len(m.snapshot.Items) {
		return
	}
	item := m.snapshot.Items[idx]
	m.pushRoute(route{source: m.snapshot.Source.Name, card: item.PermalinkSlug()})
	m.currentView = ViewDetail
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
}

// closeDetail returns to the list and records the position.
func (m *Model) closeDetail() {
	m.pushRoute(route{source: m.snapshot.Source.Name})
	m.currentView = ViewList
}

// historyBack steps to the previous position, if any.
func (m *Model) historyBack() {
	if m.histPos <= 0 {
		return
	}
	m.histPos--
	m.applyRoute(m.history[m.histPos])
}

// historyForward steps to the next position, if any.
func (m *Model) historyForward() {
	if m.histPos >= len(m.history)-1 {
		return
	}
	m.histPos++
	m.applyRoute(m.history[m.histPos])
}

// applyRoute makes the model reflect a position reached through history
// navigation. Positions in other catalogs fall back to the list view; the
// catalog itself is not refetched here.
func (m *Model) applyRoute(r route) {
	if r.source != m.snapshot.Source.Name {
		m.currentView = ViewList
		return
	}
	if r.card == "" {
		m.currentView = ViewList
		return
	}
	idx := catalog.ResolveSlug(m.snapshot.Items, r.card)
	if idx < 0 {
		m.currentView = ViewList
		return
	}
	m.currentView = ViewDetail
	m.focusIndex(idx)
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
}

// restoreCard opens the card named by a startup permalink. An unresolvable
// slug degrades to the list view.
func (m *Model) restoreCard(slug string) {
	idx := catalog.ResolveSlug(m.snapshot.Items, slug)
	if idx < 0 {
		m.setStatus("Card not found: " + slug)
		m.currentView = ViewList
		return
	}
	m.focusIndex(idx)
	m.history[m.histPos] = route{source: m.snapshot.Source.Name, card: slug}
	m.currentView = ViewDetail
	m.updateDetailViewport()
	m.detailViewport.GotoTop()
}

// focusIndex moves pagination and the cursor onto the given snapshot index.
func (m *Model) focusIndex(idx int) {
	for pos, candidate := range m.filtered {
		if candidate == idx {
			m.pager.Page = pos / m.pageSize()
			m.selectedRow = pos % m.pageSize()
			return
		}
	}
	// The card is filtered out; clear the filter so it becomes reachable.
	m.resetFilter()
	m.refilter()
	for pos, candidate := range m.filtered {
		if candidate == idx {
			m.pager.Page = pos / m.pageSize()
			m.selectedRow = pos % m.pageSize()
			return
		}
	}
}

// copyPermalink puts the share link for the highlighted card on the
// clipboard.
func (m Model) copyPermalink() (tea.Model, tea.Cmd) {
	item := m.selectedItem()
	if item == nil {
		m.setStatus("Nothing selected")
		return m, nil
	}
	if m.config == nil {
		return m, nil
	}
	permalink := m.config.Permalink(item.PermalinkSlug())
	return m, copyLinkCmd(permalink)
}
