package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proximity.klederson.com/internal/gpio"
	"proximity.klederson.com/internal/monitor"
	"proximity.klederson.com/internal/sensor"
	"proximity.klederson.com/internal/testutil"
)

func newTestModel(t *testing.T) AppModel {
	t.Helper()
	sink := &ProgramSink{}
	mon, err := monitor.New(monitor.Options{Capacity: 5, Interval: time.Second},
		sensor.NewMock(1), sensor.NewThreshold(&gpio.NopPin{}, 10), sink)
	require.NoError(t, err)
	return New(mon, sink, "mock", 10)
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(AppModel)
	require.True(t, ok)
	return am, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestApplyEvents(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	for _, v := range []int{4, 8, 12} {
		m, _ = update(t, m, EventMsg{Kind: monitor.EventPushed, At: now, Value: v})
	}
	m, _ = update(t, m, EventMsg{Kind: monitor.EventActed, At: now, Average: 8, Action: sensor.ActionWarn})
	m, _ = update(t, m, EventMsg{Kind: monitor.EventContents, At: now,
		Contents: []int{4, 8, 12}, Tail: 3, Count: 3, Capacity: 5})

	assert.Equal(t, []float64{4, 8, 12}, m.History())
	assert.Equal(t, 8.0, m.average)
	assert.Equal(t, sensor.ActionWarn, m.action)
	assert.Equal(t, 3, m.contents.Count)
	require.Len(t, m.log, 5)
	assert.Contains(t, m.log[0], "enqueued distance: 4")

	m, _ = update(t, m, EventMsg{Kind: monitor.EventReset, At: now})
	assert.Equal(t, sensor.ActionClear, m.action)
	assert.Equal(t, 0.0, m.average)
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Initializing")

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, EventMsg{Kind: monitor.EventPushed, At: time.Now(), Value: 6})
	view := m.View()
	assert.Contains(t, view, "RING BUFFER")
	assert.Contains(t, view, "HISTORY")
	assert.Contains(t, view, "EVENTS")
	assert.Contains(t, view, "enqueued distance: 6")
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	assert.False(t, m.running)
	m, _ = update(t, m, runeKey('p'))
	assert.True(t, m.running)

	m, _ = update(t, m, runeKey('?'))
	assert.True(t, m.help.ShowAll)

	_, cmd := update(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestMonitorStopped(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, MonitorStoppedMsg{Err: errors.New("sensor unplugged")})
	assert.False(t, m.running)
	assert.Contains(t, m.View(), "sensor unplugged")

	// pausing a stopped monitor is ignored
	m, _ = update(t, m, runeKey('p'))
	assert.False(t, m.running)
}

func TestStartDone(t *testing.T) {
	m := newTestModel(t)

	// A program whose context is already done drops every Send, so the
	// monitor never blocks on a program that is not running.
	progCtx, stopProg := context.WithCancel(context.Background())
	stopProg()
	p := tea.NewProgram(m, tea.WithContext(progCtx), tea.WithInput(nil), tea.WithOutput(io.Discard))

	ctx, cancel := context.WithCancel(testutil.Context(t))
	done := m.Start(ctx, p)

	select {
	case <-done:
		t.Fatal("monitor returned before cancel")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("monitor did not stop after cancel")
	}
}
