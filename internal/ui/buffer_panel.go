package ui

import (
	"fmt"
	"strings"

	"proximity.klederson.com/internal/monitor"
)

const slotWidth = 6

// RenderBufferPanel draws every slot of the window in storage order, live
// values highlighted, with H under the head slot and T under the tail slot.
func RenderBufferPanel(width, height int, contents monitor.Event) string {
	innerW := width - 4
	if innerW < slotWidth {
		innerW = slotWidth
	}

	title := StylePanelTitle.Render("RING BUFFER")
	lines := []string{title, ""}

	if contents.Capacity == 0 {
		lines = append(lines, StyleHelp.Render("  waiting for samples..."))
	} else {
		values, markers := SlotRows(contents)
		perRow := innerW / slotWidth
		if perRow < 1 {
			perRow = 1
		}
		for start := 0; start < len(values); start += perRow {
			end := min(start+perRow, len(values))
			lines = append(lines, strings.Join(values[start:end], ""))
			lines = append(lines, strings.Join(markers[start:end], ""))
		}
		lines = append(lines, "")
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  head=%d tail=%d count=%d/%d",
			contents.Head, contents.Tail, contents.Count, contents.Capacity)))
	}

	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 && height > 2 {
		lines = lines[:height-2]
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// SlotRows returns one styled cell per storage slot and the cursor marker
// row beneath them. Slot i holds the live element at logical position
// (i-head) mod capacity when that position is below count.
func SlotRows(contents monitor.Event) (values, markers []string) {
	capacity := contents.Capacity
	values = make([]string, capacity)
	markers = make([]string, capacity)
	for i := 0; i < capacity; i++ {
		pos := (i - contents.Head + capacity) % capacity
		if pos < contents.Count && pos < len(contents.Contents) {
			values[i] = StyleSlotLive.Render(fmt.Sprintf("[%4d]", contents.Contents[pos]))
		} else {
			values[i] = StyleSlotStale.Render("[   .]")
		}

		marker := ""
		if i == contents.Head && contents.Count > 0 {
			marker += "H"
		}
		if i == contents.Tail {
			marker += "T"
		}
		markers[i] = StyleCursor.Render(fmt.Sprintf("%-*s", slotWidth, "  "+marker))
	}
	return values, markers
}
