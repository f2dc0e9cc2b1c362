// Package gpio provides digital pin access for the sensor and the warning LED.
package gpio

import (
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned by WaitEdge when no edge arrives in time.
var ErrTimeout = errors.New("gpio: timed out waiting for edge")

// DefaultChip is the GPIO character device of the main header on Raspberry
// Pi class boards. Line offsets on it match the BCM pin numbers.
const DefaultChip = "gpiochip0"

// Direction of a line.
type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// Pin is a single digital line.
type Pin interface {
	// Write drives an output pin high or low.
	Write(high bool) error
	// Read samples the current level.
	Read() (bool, error)
	// WaitEdge blocks until the level changes and returns the new level
	// together with the time the change was observed.
	WaitEdge(timeout time.Duration) (high bool, at time.Time, err error)
	Close() error
}

// NopPin is an in-memory pin. Writes are recorded, edges never arrive.
type NopPin struct {
	mu     sync.Mutex
	level  bool
	writes int
}

func (p *NopPin) Write(high bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = high
	p.writes++
	return nil
}

func (p *NopPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *NopPin) WaitEdge(timeout time.Duration) (bool, time.Time, error) {
	time.Sleep(timeout)
	return false, time.Time{}, ErrTimeout
}

func (p *NopPin) Close() error { return nil }

// Writes returns how many times Write was called.
func (p *NopPin) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}
