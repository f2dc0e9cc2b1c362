package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RenderEventLog shows the most recent diagnostic lines that fit.
func RenderEventLog(width, height int, lines []string) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	out := []string{StylePanelTitle.Render("EVENTS"), ""}
	for _, l := range lines {
		if lipgloss.Width(l) > innerW {
			l = ansi.Truncate(l, innerW, "~")
		}
		style := StyleLogLine
		if strings.Contains(l, "warning") || strings.Contains(l, "full") || strings.Contains(l, "failed") {
			style = StyleLogWarn
		}
		out = append(out, style.Render(l))
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(out, "\n"))
}
