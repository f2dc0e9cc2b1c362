package sensor

import (
	"context"
	"fmt"

	"proximity.klederson.com/internal/gpio"
)

// Action is the outcome of comparing the window average to the threshold.
type Action int

const (
	ActionClear Action = iota
	ActionWarn
)

func (a Action) String() string {
	switch a {
	case ActionWarn:
		return "warn"
	default:
		return "clear"
	}
}

// Threshold lights an LED while the average distance is below Limit.
type Threshold struct {
	led   gpio.Pin
	Limit float64
}

// NewThreshold creates an actuator driving led.
func NewThreshold(led gpio.Pin, limit float64) *Threshold {
	return &Threshold{led: led, Limit: limit}
}

// Act drives the LED for the given average distance in centimetres.
func (t *Threshold) Act(ctx context.Context, avg float64) (Action, error) {
	action := ActionClear
	if avg < t.Limit {
		action = ActionWarn
	}
	if err := t.led.Write(action == ActionWarn); err != nil {
		return action, fmt.Errorf("drive led: %w", err)
	}
	return action, nil
}
