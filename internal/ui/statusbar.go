package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proximity.klederson.com/internal/sensor"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, mode string, count, capacity int, avg, threshold float64, action sensor.Action) string {
	status := ""
	if action == sensor.ActionWarn {
		status = StyleStatusAlert.Render("[TOO CLOSE]")
	} else {
		status = StyleStatusRunning.Render("[CLEAR]")
	}

	info := fmt.Sprintf(" Mode: %s  Window: %d/%d  Avg: %.1fcm  Threshold: <%.0fcm",
		mode, count, capacity, avg, threshold)

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
