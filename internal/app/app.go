package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"proximity.klederson.com/internal/config"
	"proximity.klederson.com/internal/monitor"
	"proximity.klederson.com/internal/ringbuf"
	"proximity.klederson.com/internal/sensor"
	"proximity.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	monitor *monitor.Monitor
	sink    *ProgramSink
	history *ringbuf.RingBuffer[int]
}

// AppModel is the root Bubble Tea model of the proximity dashboard.
type AppModel struct {
	width  int
	height int

	running   bool
	source    string
	threshold float64

	contents monitor.Event
	average  float64
	action   sensor.Action
	log      []string
	err      error

	keys keyMap
	help help.Model

	shared *shared
}

// New creates an AppModel displaying mon. Events reach the model through
// sink once Start attaches it to the program.
func New(mon *monitor.Monitor, sink *ProgramSink, source string, threshold float64) AppModel {
	return AppModel{
		running:   true,
		source:    source,
		threshold: threshold,
		contents:  monitor.Event{Kind: monitor.EventContents, Capacity: mon.Capacity()},
		keys:      defaultKeyMap(),
		help:      help.New(),
		shared: &shared{
			monitor: mon,
			sink:    sink,
			history: ringbuf.MustNew[int](config.HistorySize),
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.apply(monitor.Event(msg))
		return m, nil

	case MonitorStoppedMsg:
		m.err = msg.Err
		m.running = false
		return m, nil
	}

	return m, nil
}

func (m *AppModel) apply(ev monitor.Event) {
	switch ev.Kind {
	case monitor.EventPushed:
		m.shared.history.PushOverwrite(ev.Value)
	case monitor.EventActed:
		m.average = ev.Average
		m.action = ev.Action
	case monitor.EventContents:
		m.contents = ev
	case monitor.EventReset:
		m.average = 0
		m.action = sensor.ActionClear
	}

	m.log = append(m.log, fmt.Sprintf("%s %s", ev.At.Format("15:04:05"), ev))
	if over := len(m.log) - config.EventLogSize; over > 0 {
		m.log = append([]string(nil), m.log[over:]...)
	}
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		if m.err != nil {
			break
		}
		m.running = !m.running
		if m.running {
			m.shared.monitor.Resume()
		} else {
			m.shared.monitor.Pause()
		}

	case key.Matches(msg, m.keys.Clear):
		m.shared.monitor.Reset()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing proximity monitor..."
	}

	helpView := m.help.View(m.keys)
	if m.err != nil {
		helpView = ui.StyleStatusAlert.Render(fmt.Sprintf("monitor stopped: %v", m.err))
	}

	menuH := 1
	statusH := 1
	helpH := lipgloss.Height(helpView)
	bodyH := m.height - menuH - statusH - helpH
	if bodyH < 16 {
		bodyH = 16
	}

	leftW := m.width * 3 / 5
	if leftW < 40 {
		leftW = 40
	}
	logW := m.width - leftW
	if logW < 20 {
		logW = 20
	}

	bufferH := bodyH * 2 / 5
	if bufferH < 8 {
		bufferH = 8
	}
	historyH := bodyH - bufferH

	menuBar := ui.RenderMenuBar(m.width, m.source, m.running)
	bufferPanel := ui.RenderBufferPanel(leftW, bufferH, m.contents)
	historyPanel := ui.RenderHistoryPanel(leftW, historyH, m.History(), m.average, m.threshold, m.action)
	eventLog := ui.RenderEventLog(logW, bodyH, m.log)
	statusBar := ui.RenderStatusBar(m.width, m.shared.monitor.Mode().String(),
		m.contents.Count, m.contents.Capacity, m.average, m.threshold, m.action)

	return ui.ComposeLayout(menuBar, bufferPanel, historyPanel, eventLog, statusBar, helpView)
}

// History returns the recently pushed samples, oldest first.
func (m AppModel) History() []float64 {
	values := m.shared.history.Snapshot()
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Start attaches the sink to p and runs the monitor until ctx is done.
// Must be called before p.Run(). The returned channel is closed once the
// monitor has returned, after which its pins and sinks are free to close.
func (m *AppModel) Start(ctx context.Context, p *tea.Program) <-chan struct{} {
	m.shared.sink.Attach(p)
	done := make(chan struct{})
	go func() {
		defer close(done)
		err := m.shared.monitor.Run(ctx)
		p.Send(MonitorStoppedMsg{Err: err})
	}()
	return done
}
