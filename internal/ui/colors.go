package ui

// Color accessors read the active theme on every call so that InitTheme and
// SetTheme take effect immediately.

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().sgr("\033[0m") }

// ColorRed returns the error color.
func ColorRed() string { t := GetCurrentTheme(); return t.ansi(t.Error) }

// ColorGreen returns the success color.
func ColorGreen() string { t := GetCurrentTheme(); return t.ansi(t.Success) }

// ColorYellow returns the warning color.
func ColorYellow() string { t := GetCurrentTheme(); return t.ansi(t.Warning) }

// ColorBlue returns the primary color.
func ColorBlue() string { t := GetCurrentTheme(); return t.ansi(t.Primary) }

// ColorMagenta returns the info color.
func ColorMagenta() string { t := GetCurrentTheme(); return t.ansi(t.Info) }

// ColorCyan returns the secondary color.
func ColorCyan() string { t := GetCurrentTheme(); return t.ansi(t.Secondary) }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().sgr("\033[1m") }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().sgr("\033[4m") }

// Colorize wraps s in color and a reset. With the no-color theme it returns s.
func Colorize(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + ColorReset()
}
