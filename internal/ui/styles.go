package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for framed CLI output such as the
// REPL banner and section headers.
type Styles struct {
	Title   lipgloss.Style
	Box     lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// CurrentStyles returns styles matching the active theme. With the no-color
// theme every style renders plain text, borders included.
func CurrentStyles() Styles {
	t := GetCurrentTheme()
	if t.Plain {
		return plainStyles()
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(t.color(t.Primary)),
		Box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.color(t.Info)).Padding(0, 1),
		Label:   lipgloss.NewStyle().Foreground(t.color(t.Secondary)),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(t.color(t.Success)),
		Muted:   lipgloss.NewStyle().Foreground(t.color(t.Secondary)),
		Accent:  lipgloss.NewStyle().Foreground(t.color(t.Primary)),
		Warning: lipgloss.NewStyle().Bold(true).Foreground(t.color(t.Warning)),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(t.color(t.Error)),
	}
}

func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:   plain,
		Box:     plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Label:   plain,
		Value:   plain,
		Muted:   plain,
		Accent:  plain,
		Warning: plain,
		Error:   plain,
	}
}

// Banner renders a boxed title with optional subtitle lines underneath.
func Banner(title string, lines ...string) string {
	st := CurrentStyles()
	var b strings.Builder
	b.WriteString(st.Title.Render(title))
	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteString(st.Muted.Render(l))
	}
	return st.Box.Render(b.String())
}

// KeyValue renders "label: value" with the label and value styles.
func KeyValue(label, value string) string {
	st := CurrentStyles()
	return st.Label.Render(label+":") + " " + st.Value.Render(value)
}
