// Package ui holds the color themes shared by the line-oriented CLI output,
// the REPL and the terminal dashboard. A theme is a small 256-color palette
// rendered either as raw ANSI codes or as lipgloss styles.
package ui
