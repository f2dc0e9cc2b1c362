package sensor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"proximity.klederson.com/internal/config"
	"tinygo.org/x/bluetooth"
)

// ErrNoSignal is returned until the target has been heard at least once.
var ErrNoSignal = errors.New("target not seen yet")

// BLEProximity estimates the distance to one BLE advertiser from its RSSI.
type BLEProximity struct {
	adapter *bluetooth.Adapter
	target  string

	mu   sync.Mutex
	rssi float64
	seen bool
}

// NewBLEProximity tracks the advertiser with the given MAC address.
func NewBLEProximity(target string) *BLEProximity {
	return &BLEProximity{
		adapter: bluetooth.DefaultAdapter,
		target:  strings.ToUpper(target),
	}
}

// Start enables the adapter and scans in a goroutine until ctx is done.
func (b *BLEProximity) Start(ctx context.Context) error {
	if err := b.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	go func() {
		_ = b.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if strings.ToUpper(result.Address.String()) != b.target {
				return
			}
			b.observe(float64(result.RSSI))
		})
	}()
	go func() {
		<-ctx.Done()
		_ = b.adapter.StopScan()
	}()
	return nil
}

// observe folds a new RSSI value in with EMA smoothing.
func (b *BLEProximity) observe(rssi float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.seen {
		b.rssi = rssi
		b.seen = true
		return
	}
	b.rssi = b.rssi*(1-config.SmoothingAlpha) + rssi*config.SmoothingAlpha
}

// Sample returns the estimated distance in centimetres.
func (b *BLEProximity) Sample(ctx context.Context) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.seen {
		return 0, ErrNoSignal
	}
	meters := RSSIToDistance(b.rssi, config.MeasuredPower, config.PathLossExp)
	return int(math.Round(meters * 100)), nil
}
