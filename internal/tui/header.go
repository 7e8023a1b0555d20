package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/format"
)

// HeaderModel renders the title, the request and the elapsed time.
type HeaderModel struct {
	request   string
	version   string
	startTime time.Time
	endTime   time.Time
	width     int
}

// NewHeaderModel creates a header for req.
func NewHeaderModel(req calc.Request, version string) HeaderModel {
	return HeaderModel{
		request:   format.TruncateDigits(req.A.String(), 24, 8) + " " + req.Op.Symbol() + " " + format.TruncateDigits(req.B.String(), 24, 8),
		version:   version,
		startTime: time.Now(),
	}
}

// SetDone freezes the elapsed time.
func (h *HeaderModel) SetDone() { h.endTime = time.Now() }

// Reset restarts the elapsed time.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth sets the rendered width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// Elapsed returns the time since the run started, or its total once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header line.
func (h HeaderModel) View() string {
	title := "widecalc"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	line := styles.title.Render(title) +
		styles.muted.Render(" | ") + styles.value.Render(h.request) +
		styles.muted.Render(" | ") + styles.accent.Render("Elapsed: "+format.FormatExecutionDuration(h.Elapsed()))
	return lipgloss.NewStyle().Width(max(h.width, lipgloss.Width(line))).Render(line)
}

// FooterModel renders the key help and the run status.
type FooterModel struct {
	keys   KeyMap
	width  int
	paused bool
	done   bool
	failed bool
}

// NewFooterModel creates a footer listing keys.
func NewFooterModel(keys KeyMap) FooterModel {
	return FooterModel{keys: keys}
}

// SetWidth sets the rendered width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetPaused marks the display as paused.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone marks the run as finished.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError marks the run as failed.
func (f *FooterModel) SetError(e bool) { f.failed = e }

// Status returns the run status word.
func (f FooterModel) Status() string {
	switch {
	case f.failed:
		return "FAILED"
	case f.done:
		return "DONE"
	case f.paused:
		return "PAUSED"
	default:
		return "RUNNING"
	}
}

// View renders the footer line.
func (f FooterModel) View() string {
	parts := make([]string, 0, len(f.keys.ShortHelp()))
	for _, b := range f.keys.ShortHelp() {
		parts = append(parts, helpEntry(b))
	}
	status := f.Status()
	var rendered string
	switch status {
	case "FAILED":
		rendered = styles.err.Render(status)
	case "PAUSED":
		rendered = styles.warning.Render(status)
	default:
		rendered = styles.value.Render(status)
	}
	line := strings.Join(parts, "  ") + "  " + rendered
	return lipgloss.NewStyle().Width(max(f.width, lipgloss.Width(line))).Render(line)
}

func helpEntry(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("%s %s", styles.accent.Render(h.Key), styles.muted.Render(h.Desc))
}
