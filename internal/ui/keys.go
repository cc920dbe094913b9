package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinyplayerss/hyteserve/internal/prefs"
	"github.com/tinyplayerss/hyteserve/internal/source"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// While the search field has focus it owns every key except the ones
	// that leave it.
	if m.searching {
		return m.handleSearchKey(msg)
	}

	// Global keys
	switch msg.String() {
	case "ctrl+c", "e":
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "T":
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case "1", "2", "3", "4":
		return m.switchSourceByKey(msg.String())

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil

	case "a":
		m.currentView = ViewActivity
		return m, readActivityCmd(m.config)

	case "r":
		m.loading = true
		return m, tea.Batch(
			loadCatalogCmd(m.ctx, m.client, m.snapshot.Source),
			m.spin.Tick,
		)

	case "c":
		return m.copyPermalink()

	case "[":
		m.historyBack()
		return m, nil

	case "]":
		m.historyForward()
		return m, nil

	case "esc":
		return m.handleEscape()
	}

	// View-specific keys
	switch m.currentView {
	case ViewDetail:
		return m.handleDetailKey(msg)
	case ViewActivity:
		return m.handleActivityKey(msg)
	default:
		if m.showTags {
			return m.handleTagPanelKey(msg)
		}
		return m.handleListKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setQuery("")
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.setQuery(m.searchInput.Value())
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.selectedRow < len(m.pageItems())-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "h", "left":
		if m.pager.Page > 0 {
			m.pager.Page--
			m.selectedRow = 0
		}
	case "l", "right":
		if m.pager.Page < m.pager.TotalPages-1 {
			m.pager.Page++
			m.selectedRow = 0
		}
	case "g", "home":
		m.pager.Page = 0
		m.selectedRow = 0
	case "G", "end":
		m.pager.Page = maxInt(m.pager.TotalPages-1, 0)
		m.selectedRow = maxInt(len(m.pageItems())-1, 0)
	case "t":
		m.showTags = true
	case "enter":
		if idx := m.selectedIndex(); idx >= 0 {
			m.openDetail(idx)
			return m, nil
		}
	}
	return m, nil
}

func (m Model) handleTagPanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.tagCursor < len(m.tagCounts)-1 {
			m.tagCursor++
		}
	case "k", "up":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case " ", "space", "enter":
		m.toggleTag()
	case "x":
		m.filter.Tags = map[string]struct{}{}
		m.pager.Page = 0
		m.refilter()
	case "t":
		m.showTags = false
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.detailViewport.ScrollDown(1)
	case "k", "up":
		m.detailViewport.ScrollUp(1)
	case "ctrl+d":
		m.detailViewport.HalfPageDown()
	case "ctrl+u":
		m.detailViewport.HalfPageUp()
	case "g", "home":
		m.detailViewport.GotoTop()
	case "G", "end":
		m.detailViewport.GotoBottom()
	}
	return m, nil
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.activityViewport.ScrollDown(1)
	case "k", "up":
		m.activityViewport.ScrollUp(1)
	case "ctrl+d":
		m.activityViewport.HalfPageDown()
	case "ctrl+u":
		m.activityViewport.HalfPageUp()
	case "g", "home":
		m.activityViewport.GotoTop()
	case "G", "end":
		m.activityViewport.GotoBottom()
	}
	return m, nil
}

// handleEscape walks one level out: tag panel, detail, activity, then the
// active filter.
func (m Model) handleEscape() (tea.Model, tea.Cmd) {
	switch {
	case m.showTags:
		m.showTags = false
	case m.currentView == ViewDetail:
		m.closeDetail()
	case m.currentView == ViewActivity:
		m.currentView = ViewList
	case !m.filter.Empty():
		m.resetFilter()
		m.pager.Page = 0
		m.refilter()
	}
	return m, nil
}

func (m Model) switchSourceByKey(key string) (tea.Model, tea.Cmd) {
	order := map[string]int{"1": 0, "2": 1, "3": 2, "4": 3}
	idx, ok := order[key]
	if !ok || idx >= len(source.All) {
		return m, nil
	}
	return m.switchSource(source.All[idx])
}

func (m Model) switchSource(src source.Source) (tea.Model, tea.Cmd) {
	if src.Name == m.snapshot.Source.Name && m.snapshot.HasCatalog {
		return m, nil
	}
	m.currentView = ViewList
	m.pushRoute(route{source: src.Name})
	m.loading = true
	m.savePrefsSource(src.Name)
	return m, tea.Batch(
		loadCatalogCmd(m.ctx, m.client, src),
		m.spin.Tick,
	)
}

func (m *Model) setQuery(raw string) {
	m.filter.Query = normalizeQuery(raw)
	m.pager.Page = 0
	m.selectedRow = 0
	m.refilter()
}

func (m *Model) toggleTag() {
	if m.tagCursor < 0 || m.tagCursor >= len(m.tagCounts) {
		return
	}
	tag := m.tagCounts[m.tagCursor].Tag
	if m.filter.Tags == nil {
		m.filter.Tags = map[string]struct{}{}
	}
	if _, active := m.filter.Tags[tag]; active {
		delete(m.filter.Tags, tag)
	} else {
		m.filter.Tags[tag] = struct{}{}
	}
	m.pager.Page = 0
	m.selectedRow = 0
	m.refilter()
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Source: m.snapshot.Source.Name})
}

func (m Model) savePrefsSource(name string) {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Source: name})
}
