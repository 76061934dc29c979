// Package tui detects whether output goes to a terminal and renders the run
// summary with lipgloss styles when it does.
package tui
