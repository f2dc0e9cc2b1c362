package app

import "proximity.klederson.com/internal/monitor"

// EventMsg carries a monitor event into the Bubble Tea loop.
type EventMsg monitor.Event

// MonitorStoppedMsg reports that the sampling loop returned.
type MonitorStoppedMsg struct {
	Err error
}
