// Package tui runs one request across the selected backends inside a
// bubbletea dashboard. It shows per-backend progress, process and system
// load, and the cross-checked result.
package tui
