package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinyplayerss/hyteserve/internal/config"
	"github.com/tinyplayerss/hyteserve/internal/logtail"
)

// copyLinkCmd puts a permalink on the system clipboard.
func copyLinkCmd(permalink string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(permalink)
		return linkCopiedMsg{permalink: permalink, err: err}
	}
}

const activityWindow = 200

// readActivityCmd loads the tail of the activity log.
func readActivityCmd(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		if cfg == nil {
			return activityMsg(nil)
		}
		lines, err := logtail.Read(cfg.LogPath(), activityWindow)
		if err != nil {
			return activityMsg([]string{"activity log unavailable: " + err.Error()})
		}
		return activityMsg(logtail.FormatLines(lines))
	}
}
