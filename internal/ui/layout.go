package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the buffer and history panels on the left, puts the
// event log on the right, with menu bar on top and status and help at the bottom.
func ComposeLayout(menuBar, bufferPanel, historyPanel, eventLog, statusBar, help string) string {
	left := lipgloss.JoinVertical(lipgloss.Left, bufferPanel, historyPanel)
	middle := lipgloss.JoinHorizontal(lipgloss.Top, left, eventLog)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar, help)
}
