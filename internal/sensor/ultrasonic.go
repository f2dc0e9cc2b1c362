package sensor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"proximity.klederson.com/internal/config"
	"proximity.klederson.com/internal/gpio"
)

// ErrNoEcho is returned when the echo line never completes a pulse.
var ErrNoEcho = errors.New("no echo from ultrasonic sensor")

// Ultrasonic reads an HC-SR04 style ranging module: a 10µs trigger pulse
// starts a measurement and the echo line stays high for the round trip.
type Ultrasonic struct {
	trig    gpio.Pin
	echo    gpio.Pin
	timeout time.Duration
}

// NewUltrasonic creates a sampler on the given trigger and echo pins.
func NewUltrasonic(trig, echo gpio.Pin) *Ultrasonic {
	return &Ultrasonic{
		trig:    trig,
		echo:    echo,
		timeout: config.EchoTimeout,
	}
}

// Sample triggers one measurement and returns the distance in centimetres.
func (u *Ultrasonic) Sample(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := u.trigger(); err != nil {
		return 0, fmt.Errorf("trigger: %w", err)
	}
	rise, err := u.waitLevel(true)
	if err != nil {
		return 0, err
	}
	fall, err := u.waitLevel(false)
	if err != nil {
		return 0, err
	}
	return EchoToDistance(fall.Sub(rise)), nil
}

func (u *Ultrasonic) trigger() error {
	if err := u.trig.Write(false); err != nil {
		return err
	}
	time.Sleep(config.TriggerSettle)
	if err := u.trig.Write(true); err != nil {
		return err
	}
	time.Sleep(config.TriggerPulse)
	return u.trig.Write(false)
}

func (u *Ultrasonic) waitLevel(want bool) (time.Time, error) {
	deadline := time.Now().Add(u.timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return time.Time{}, ErrNoEcho
		}
		high, at, err := u.echo.WaitEdge(remaining)
		if errors.Is(err, gpio.ErrTimeout) {
			return time.Time{}, ErrNoEcho
		}
		if err != nil {
			return time.Time{}, fmt.Errorf("echo: %w", err)
		}
		if high == want {
			return at, nil
		}
	}
}

// Close releases both pins.
func (u *Ultrasonic) Close() error {
	return errors.Join(u.trig.Close(), u.echo.Close())
}
