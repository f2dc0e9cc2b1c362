package monitor

import (
	"fmt"
	"time"

	"proximity.klederson.com/internal/sensor"
)

// EventKind identifies what happened during a step.
type EventKind int

const (
	EventPushed EventKind = iota
	EventEvicted
	EventRejected
	EventPopped
	EventActed
	EventContents
	EventSampleFailed
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventPushed:
		return "pushed"
	case EventEvicted:
		return "evicted"
	case EventRejected:
		return "rejected"
	case EventPopped:
		return "popped"
	case EventActed:
		return "acted"
	case EventContents:
		return "contents"
	case EventSampleFailed:
		return "sample-failed"
	case EventReset:
		return "reset"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one diagnostic record emitted by the monitor. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind EventKind
	At   time.Time

	// Pushed, Evicted, Rejected, Popped
	Value int

	// Acted
	Average float64
	Action  sensor.Action

	// Contents: live elements oldest first plus the cursor positions
	Contents []int
	Head     int
	Tail     int
	Count    int
	Capacity int

	// SampleFailed
	Err error
}

func (e Event) String() string {
	switch e.Kind {
	case EventPushed:
		return fmt.Sprintf("enqueued distance: %d", e.Value)
	case EventEvicted:
		return fmt.Sprintf("evicted oldest: %d", e.Value)
	case EventRejected:
		return fmt.Sprintf("buffer full, rejected: %d", e.Value)
	case EventPopped:
		return fmt.Sprintf("dequeued: %d", e.Value)
	case EventActed:
		if e.Action == sensor.ActionWarn {
			return fmt.Sprintf("warning: object is too close! avg %.1fcm", e.Average)
		}
		return fmt.Sprintf("average %.1fcm", e.Average)
	case EventContents:
		return fmt.Sprintf("buffer contents: %v (head=%d tail=%d count=%d/%d)",
			e.Contents, e.Head, e.Tail, e.Count, e.Capacity)
	case EventSampleFailed:
		return fmt.Sprintf("sample failed: %v", e.Err)
	case EventReset:
		return "buffer cleared"
	default:
		return e.Kind.String()
	}
}
