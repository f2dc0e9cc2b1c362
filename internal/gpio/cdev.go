//go:build linux

package gpio

import (
	"fmt"
	"time"

	"github.com/warthog618/go-gpiocdev"
	"golang.org/x/sys/unix"
)

const consumer = "proximity"

// edgeQueue is how many unread edges an input line keeps. A ranging cycle
// produces two.
const edgeQueue = 16

// requestedLine is the part of *gpiocdev.Line a Line uses.
type requestedLine interface {
	Value() (int, error)
	SetValue(value int) error
	Close() error
}

// Line is a single line of a GPIO character device. Input lines are
// requested with detection on both edges. The kernel timestamps each edge
// so pulse widths do not depend on scheduling latency.
type Line struct {
	chip   string
	offset int
	dir    Direction
	line   requestedLine

	// boot maps the kernel monotonic clock used for edge timestamps onto
	// wall time.
	boot   time.Time
	events chan gpiocdev.LineEvent
}

// OpenLine requests line offset on chip (for example "gpiochip0").
func OpenLine(chip string, offset int, dir Direction) (*Line, error) {
	if chip == "" {
		chip = DefaultChip
	}
	boot, err := monotonicBase()
	if err != nil {
		return nil, err
	}
	l := &Line{
		chip:   chip,
		offset: offset,
		dir:    dir,
		boot:   boot,
		events: make(chan gpiocdev.LineEvent, edgeQueue),
	}

	opts := []gpiocdev.LineReqOption{gpiocdev.WithConsumer(consumer)}
	if dir == In {
		opts = append(opts,
			gpiocdev.AsInput,
			gpiocdev.WithBothEdges,
			gpiocdev.WithEventHandler(l.onEvent),
		)
	} else {
		opts = append(opts, gpiocdev.AsOutput(0))
	}
	req, err := gpiocdev.RequestLine(chip, offset, opts...)
	if err != nil {
		return nil, fmt.Errorf("request %s:%d: %w", chip, offset, err)
	}
	l.line = req
	return l, nil
}

func monotonicBase() (time.Time, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return time.Time{}, fmt.Errorf("read monotonic clock: %w", err)
	}
	return time.Now().Add(-time.Duration(ts.Nano())), nil
}

// onEvent runs on the gpiocdev watcher goroutine. Edges beyond the queue
// are dropped rather than stalling the watcher.
func (l *Line) onEvent(evt gpiocdev.LineEvent) {
	select {
	case l.events <- evt:
	default:
	}
}

func (l *Line) Write(high bool) error {
	if l.dir != Out {
		return fmt.Errorf("%s:%d: write on input line", l.chip, l.offset)
	}
	v := 0
	if high {
		v = 1
	}
	return l.line.SetValue(v)
}

func (l *Line) Read() (bool, error) {
	v, err := l.line.Value()
	if err != nil {
		return false, fmt.Errorf("read %s:%d: %w", l.chip, l.offset, err)
	}
	return v != 0, nil
}

// WaitEdge returns the next queued edge, or ErrTimeout once timeout has
// passed. A timeout of zero or less only checks the queue.
func (l *Line) WaitEdge(timeout time.Duration) (bool, time.Time, error) {
	if timeout <= 0 {
		select {
		case evt := <-l.events:
			return l.edge(evt)
		default:
			return false, time.Time{}, ErrTimeout
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case evt := <-l.events:
		return l.edge(evt)
	case <-timer.C:
		return false, time.Time{}, ErrTimeout
	}
}

func (l *Line) edge(evt gpiocdev.LineEvent) (bool, time.Time, error) {
	return evt.Type == gpiocdev.LineEventRisingEdge, l.boot.Add(evt.Timestamp), nil
}

// Close releases the line back to the kernel.
func (l *Line) Close() error {
	return l.line.Close()
}
