package ui

import (
	"os"
	"slices"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeEnvVar selects the theme when colors are enabled.
const ThemeEnvVar = "WIDECALC_THEME"

// Theme is a named 256-color palette. The same palette drives the raw ANSI
// codes used by line output and the lipgloss styles used by framed output.
// A zero palette entry means "no color".
type Theme struct {
	Name string

	Primary   uint8 // results and prompts
	Secondary uint8 // labels and less prominent text
	Success   uint8
	Warning   uint8
	Error     uint8
	Info      uint8 // borders and informational lines

	// Plain disables every escape sequence, bold and underline included.
	Plain bool
}

var (
	// DarkTheme uses bright colors for dark backgrounds.
	DarkTheme = Theme{Name: "dark", Primary: 39, Secondary: 245, Success: 82, Warning: 220, Error: 196, Info: 141}

	// LightTheme uses darker colors for light backgrounds.
	LightTheme = Theme{Name: "light", Primary: 27, Secondary: 240, Success: 28, Warning: 130, Error: 124, Info: 54}

	// NoColorTheme renders plain text. It is selected by -no-color or NO_COLOR.
	NoColorTheme = Theme{Name: "none", Plain: true}

	themes = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames returns the registered theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme installs t as the active theme. Tests use it to restore
// the previous theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the theme called name and reports whether it exists.
// Unknown names fall back to the dark theme.
func SetTheme(name string) bool {
	t, ok := themes[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
	return ok
}

// InitTheme picks the theme at startup. noColor and a set NO_COLOR
// (https://no-color.org/) both force plain output; otherwise WIDECALC_THEME
// names the theme, defaulting to dark.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(os.Getenv(ThemeEnvVar))
}

// ansi returns the foreground escape sequence for a palette entry.
func (t Theme) ansi(code uint8) string {
	if t.Plain || code == 0 {
		return ""
	}
	return "\033[38;5;" + strconv.Itoa(int(code)) + "m"
}

// color returns the lipgloss color for a palette entry.
func (t Theme) color(code uint8) lipgloss.TerminalColor {
	if t.Plain || code == 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(int(code)))
}

// sgr returns a fixed SGR sequence unless the theme is plain.
func (t Theme) sgr(seq string) string {
	if t.Plain {
		return ""
	}
	return seq
}
