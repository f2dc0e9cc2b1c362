package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proximity.klederson.com/internal/monitor"
	"proximity.klederson.com/internal/sensor"
)

func TestSlotRowsWrapped(t *testing.T) {
	// storage [6 7 3 4 5], oldest at slot 2
	ev := monitor.Event{
		Kind:     monitor.EventContents,
		Contents: []int{3, 4, 5, 6, 7},
		Head:     2,
		Tail:     2,
		Count:    5,
		Capacity: 5,
	}
	values, markers := SlotRows(ev)
	require.Len(t, values, 5)
	assert.Contains(t, values[0], "6")
	assert.Contains(t, values[1], "7")
	assert.Contains(t, values[2], "3")
	assert.Contains(t, values[4], "5")
	assert.Contains(t, markers[2], "HT")
	assert.NotContains(t, markers[0], "H")
}

func TestSlotRowsPartial(t *testing.T) {
	ev := monitor.Event{Contents: []int{9}, Head: 1, Tail: 2, Count: 1, Capacity: 3}
	values, markers := SlotRows(ev)
	assert.Contains(t, values[0], ".")
	assert.Contains(t, values[1], "9")
	assert.Contains(t, values[2], ".")
	assert.Contains(t, markers[1], "H")
	assert.Contains(t, markers[2], "T")

	// empty window marks only the tail
	_, markers = SlotRows(monitor.Event{Head: 1, Tail: 1, Capacity: 3})
	assert.NotContains(t, markers[1], "H")
	assert.Contains(t, markers[1], "T")
}

func TestRenderSparkline(t *testing.T) {
	assert.Equal(t, "", renderSparkline(nil, 10))
	assert.Equal(t, "_^", renderSparkline([]float64{0, 10}, 10))
	assert.Equal(t, "___", renderSparkline([]float64{5, 5, 5}, 10))
	// only the last width values are drawn
	assert.Len(t, renderSparkline([]float64{1, 2, 3, 4, 5, 6}, 4), 4)
}

func TestRenderProximityBar(t *testing.T) {
	near := renderProximityBar(0, 10, 20)
	far := renderProximityBar(100, 10, 20)
	assert.Equal(t, 22, lipgloss.Width(near))
	assert.Equal(t, 22, lipgloss.Width(far))
	assert.Equal(t, 20, strings.Count(near, "|"))
	assert.Equal(t, 0, strings.Count(far, "|"))
}

func TestPanelsRender(t *testing.T) {
	ev := monitor.Event{Contents: []int{12, 8}, Head: 0, Tail: 2, Count: 2, Capacity: 5}
	out := RenderBufferPanel(60, 12, ev)
	assert.Contains(t, out, "RING BUFFER")
	assert.Contains(t, out, "count=2/5")

	out = RenderBufferPanel(60, 12, monitor.Event{})
	assert.Contains(t, out, "waiting for samples")

	out = RenderHistoryPanel(60, 14, []float64{12, 8}, 10, 10, sensor.ActionClear)
	assert.Contains(t, out, "10.0cm")
	out = RenderHistoryPanel(60, 14, []float64{4}, 4, 10, sensor.ActionWarn)
	assert.Contains(t, out, "too close")

	out = RenderEventLog(40, 8, []string{"line-1", "line-2", "line-3", "line-4", "line-5", "line-6"})
	assert.Contains(t, out, "line-6")
	assert.Contains(t, out, "line-3")
	assert.NotContains(t, out, "line-2")
}

func TestEventLogTruncatesRunes(t *testing.T) {
	long := "sample failed: " + strings.Repeat("é", 40)
	out := RenderEventLog(30, 6, []string{long})
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "é~")
	assert.NotContains(t, out, strings.Repeat("é", 40))
}
