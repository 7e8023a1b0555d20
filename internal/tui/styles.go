package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/widecalc/internal/ui"
)

// styles holds the dashboard styles. They follow the ui theme and are
// rebuilt by initStyles once the theme is known.
var styles struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func init() {
	initStyles()
}

func initStyles() {
	st := ui.CurrentStyles()
	styles.panel = st.Box
	styles.title = st.Title
	styles.label = st.Label
	styles.value = st.Value
	styles.muted = st.Muted
	styles.accent = st.Accent
	styles.warning = st.Warning
	styles.err = st.Error
}
