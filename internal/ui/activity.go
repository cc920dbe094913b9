package ui

import "strings"

// renderActivity renders the activity log view.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Render("ACTIVITY LOG")
	return title + "\n" + m.activityViewport.View()
}

// updateActivityViewport installs the latest log lines and scrolls to the
// newest entry.
func (m *Model) updateActivityViewport() {
	if !m.ready {
		return
	}
	if len(m.activityLines) == 0 {
		m.activityViewport.SetContent(m.theme.Styles().MutedText.Render("Nothing logged yet."))
		return
	}
	m.activityViewport.SetContent(strings.Join(m.activityLines, "\n"))
	m.activityViewport.GotoBottom()
}
