// Package monitor runs the sampling loop: read a distance, push it into the
// window, average the window and drive the actuator.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"proximity.klederson.com/internal/ringbuf"
	"proximity.klederson.com/internal/sensor"
)

// Mode selects what a push does when the window is full.
type Mode int

const (
	// ModeOverwrite evicts the oldest sample so the newest is always kept.
	ModeOverwrite Mode = iota
	// ModeStrict rejects the push, drains the window and starts a new one.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "overwrite"
}

// ParseMode parses "overwrite" or "strict".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "overwrite":
		return ModeOverwrite, nil
	case "strict":
		return ModeStrict, nil
	}
	return 0, fmt.Errorf("unknown mode %q (want overwrite or strict)", s)
}

// Set implements pflag.Value so a Mode can be bound to a flag directly.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *Mode) Type() string { return "mode" }

// Sampler produces one distance reading in centimetres.
type Sampler interface {
	Sample(ctx context.Context) (int, error)
}

// Actuator reacts to the current window average.
type Actuator interface {
	Act(ctx context.Context, avg float64) (sensor.Action, error)
}

// Options configure a Monitor.
type Options struct {
	Capacity int
	Mode     Mode
	Interval time.Duration
}

type command int

const (
	cmdPause command = iota
	cmdResume
	cmdReset
)

// Monitor owns the sample window. Only the goroutine calling Step or Run
// touches the buffer; other goroutines talk to it through Pause, Resume and
// Reset.
type Monitor struct {
	buf      *ringbuf.RingBuffer[int]
	mode     Mode
	interval time.Duration

	sampler  Sampler
	actuator Actuator
	sink     Sink

	paused bool
	cmds   chan command
}

// New creates a monitor with an empty window.
func New(opts Options, sampler Sampler, actuator Actuator, sink Sink) (*Monitor, error) {
	buf, err := ringbuf.New[int](opts.Capacity)
	if err != nil {
		return nil, err
	}
	if opts.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", opts.Interval)
	}
	if sampler == nil || actuator == nil {
		return nil, errors.New("monitor needs a sampler and an actuator")
	}
	if sink == nil {
		sink = MultiSink{}
	}
	return &Monitor{
		buf:      buf,
		mode:     opts.Mode,
		interval: opts.Interval,
		sampler:  sampler,
		actuator: actuator,
		sink:     sink,
		cmds:     make(chan command, 8),
	}, nil
}

// Mode returns the push mode.
func (m *Monitor) Mode() Mode { return m.mode }

// Capacity returns the window size.
func (m *Monitor) Capacity() int { return m.buf.Cap() }

// Step takes one sample and runs it through the window and the actuator.
// A failed sample is reported to the sink and skipped.
func (m *Monitor) Step(ctx context.Context) error {
	v, err := m.sampler.Sample(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.emit(ctx, Event{Kind: EventSampleFailed, Err: err})
		return nil
	}

	if err := m.push(ctx, v); err != nil {
		return err
	}
	m.emit(ctx, Event{Kind: EventPushed, Value: v})

	avg := m.buf.Average()
	action, err := m.actuator.Act(ctx, avg)
	if err != nil {
		return fmt.Errorf("act on average %.1f: %w", avg, err)
	}
	m.emit(ctx, Event{Kind: EventActed, Average: avg, Action: action})
	m.emitContents(ctx)
	return nil
}

func (m *Monitor) push(ctx context.Context, v int) error {
	if m.mode == ModeOverwrite {
		if old, ok := m.buf.PushOverwrite(v); ok {
			m.emit(ctx, Event{Kind: EventEvicted, Value: old})
		}
		return nil
	}

	err := m.buf.Push(v)
	if !errors.Is(err, ringbuf.ErrFull) {
		return err
	}
	m.emit(ctx, Event{Kind: EventRejected, Value: v})
	for {
		old, err := m.buf.Pop()
		if errors.Is(err, ringbuf.ErrEmpty) {
			break
		}
		m.emit(ctx, Event{Kind: EventPopped, Value: old})
	}
	if err := m.buf.Push(v); err != nil {
		return fmt.Errorf("push after drain: %w", err)
	}
	return nil
}

// Run samples every interval until ctx is canceled. The first sample is
// taken immediately.
func (m *Monitor) Run(ctx context.Context) error {
	logctx.Info(ctx, "monitor started",
		zap.Stringer("mode", m.mode),
		zap.Int("capacity", m.buf.Cap()),
		zap.Duration("interval", m.interval),
	)
	defer logctx.Info(ctx, "monitor stopped")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-m.cmds:
			m.handle(ctx, cmd)
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	if m.paused {
		return
	}
	if err := m.Step(ctx); err != nil && ctx.Err() == nil {
		logctx.Error(ctx, "step", zap.Error(err))
	}
}

func (m *Monitor) handle(ctx context.Context, cmd command) {
	switch cmd {
	case cmdPause:
		m.paused = true
	case cmdResume:
		m.paused = false
	case cmdReset:
		m.buf.Reset()
		m.emit(ctx, Event{Kind: EventReset})
		m.emitContents(ctx)
	}
}

// Pause stops sampling until Resume. Safe to call from any goroutine.
func (m *Monitor) Pause() { m.send(cmdPause) }

// Resume restarts sampling after Pause.
func (m *Monitor) Resume() { m.send(cmdResume) }

// Reset empties the window before the next sample.
func (m *Monitor) Reset() { m.send(cmdReset) }

func (m *Monitor) send(cmd command) {
	select {
	case m.cmds <- cmd:
	default:
	}
}

func (m *Monitor) emitContents(ctx context.Context) {
	head, tail, count := m.buf.Cursors()
	m.emit(ctx, Event{
		Kind:     EventContents,
		Contents: m.buf.Snapshot(),
		Head:     head,
		Tail:     tail,
		Count:    count,
		Capacity: m.buf.Cap(),
	})
}

func (m *Monitor) emit(ctx context.Context, ev Event) {
	ev.At = time.Now()
	m.sink.Emit(ctx, ev)
}
