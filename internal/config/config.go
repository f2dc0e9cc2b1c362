package config

import (
	"fmt"
	"time"
)

const (
	// Sampling window
	BufferSize     = 5           // Ring buffer capacity (samples)
	SampleInterval = time.Second // Delay between two readings
	HistorySize    = 120         // Samples kept for the sparkline
	EventLogSize   = 200         // Diagnostic lines kept in the TUI

	// HC-SR04 wiring, as line offsets on Chip
	Chip    = "gpiochip0" // GPIO character device
	TrigPin = 9           // Trigger output line
	EchoPin = 10          // Echo input line
	LEDPin  = 13          // Proximity warning LED

	// HC-SR04 timing
	TriggerSettle = 2 * time.Microsecond  // Low time before the trigger pulse
	TriggerPulse  = 10 * time.Microsecond // Trigger pulse width
	EchoTimeout   = 38 * time.Millisecond // Sensor reports no obstacle after ~38ms
	SoundCmPerUs  = 0.0344                // Speed of sound in cm/µs (round trip halved)

	// Actuation
	Threshold = 10.0 // Average distance (cm) below which the LED turns on

	// BLE proximity source
	MeasuredPower  = -59.0 // RSSI at 1 meter (dBm)
	PathLossExp    = 2.5   // Path loss exponent (N)
	SmoothingAlpha = 0.3   // EMA smoothing factor (30% new, 70% old)

	// Demo mode
	DemoBaseCm      = 18.0 // Mean distance of the fake obstacle
	DemoAmplitudeCm = 12.0 // Swing of the fake obstacle

	// App
	AppName    = "PROXIMITY"
	AppVersion = "1.0"
)

// Source selects where distance readings come from.
type Source string

const (
	SourceUltrasonic Source = "ultrasonic"
	SourceBLE        Source = "ble"
	SourceMock       Source = "mock"
)

// Options are the runtime settings bound to command line flags.
type Options struct {
	Source    Source
	Capacity  int
	Threshold float64
	Interval  time.Duration

	Chip    string
	TrigPin int
	EchoPin int
	LEDPin  int

	BLETarget string

	Headless bool
	Record   string
	LogFile  string
}

// Default returns the options of the stock HC-SR04 wiring.
func Default() Options {
	return Options{
		Source:    SourceUltrasonic,
		Capacity:  BufferSize,
		Threshold: Threshold,
		Interval:  SampleInterval,
		Chip:      Chip,
		TrigPin:   TrigPin,
		EchoPin:   EchoPin,
		LEDPin:    LEDPin,
	}
}

// Validate checks option combinations before any hardware is touched.
func (o Options) Validate() error {
	switch o.Source {
	case SourceUltrasonic, SourceMock:
	case SourceBLE:
		if o.BLETarget == "" {
			return fmt.Errorf("source %q requires --ble-target", o.Source)
		}
	default:
		return fmt.Errorf("unknown source %q", o.Source)
	}
	if o.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", o.Capacity)
	}
	if o.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %v", o.Interval)
	}
	if o.Source != SourceMock && o.Chip == "" {
		return fmt.Errorf("source %q requires a gpio chip", o.Source)
	}
	if o.Source == SourceUltrasonic && o.TrigPin == o.EchoPin {
		return fmt.Errorf("trigger and echo must use different pins (both %d)", o.TrigPin)
	}
	return nil
}
