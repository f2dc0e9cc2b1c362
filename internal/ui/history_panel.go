package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proximity.klederson.com/internal/sensor"
)

// RenderHistoryPanel renders the running average, the proximity bar and a
// sparkline of recent samples.
func RenderHistoryPanel(width, height int, history []float64, avg, threshold float64, action sensor.Action) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{StylePanelTitle.Render("HISTORY"), ""}

	state := StyleValue.Render("clear")
	if action == sensor.ActionWarn {
		state = StyleStatusAlert.Render("WARNING: object is too close!")
	}
	fields := []struct{ label, value string }{
		{"Average", StyleValue.Render(fmt.Sprintf("%.1fcm", avg))},
		{"Threshold", StyleValue.Render(fmt.Sprintf("<%.0fcm", threshold))},
		{"State", state},
	}
	for _, f := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-10s", f.label))+f.value)
	}
	lines = append(lines, "")

	barWidth := innerW - 12
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines, StyleLabel.Render("  Range   ")+renderProximityBar(avg, threshold, barWidth))
	lines = append(lines, "")

	if len(history) > 0 {
		sparkW := innerW - 4
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, StyleLabel.Render("  Samples:"))
		spark := renderSparkline(history, sparkW)
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(ColorGreen).Render(spark))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 && height > 2 {
		lines = lines[:height-2]
	}

	style := StylePanelBorder
	if action == sensor.ActionWarn {
		style = StylePanelAlert
	}
	return style.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderProximityBar fills more of the bar the closer the obstacle is.
// The bar spans 0 to four times the threshold.
func renderProximityBar(avg, threshold float64, width int) string {
	span := threshold * 4
	if span <= 0 {
		span = 1
	}
	ratio := 1 - avg/span
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	color := ColorGreen
	if avg < threshold {
		color = ColorError
	} else if avg < threshold*2 {
		color = ColorWarning
	}

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	filledPart := lipgloss.NewStyle().Foreground(color).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	// Take last `width` values
	start := 0
	if len(values) > width {
		start = len(values) - width
	}
	values = values[start:]

	// Find min/max for scaling
	minV, maxV := values[0], values[0]
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	rng := maxV - minV
	if rng < 1 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int((v - minV) / rng * float64(len(chars)-1))
		idx = max(0, min(idx, len(chars)-1))
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
