package sensor

import (
	"context"
	"math"
	"math/rand"

	"proximity.klederson.com/internal/config"
)

// Mock generates a fake obstacle that drifts in and out of range, for demo
// mode and tests.
type Mock struct {
	rng       *rand.Rand
	base      float64
	amplitude float64
	phase     float64
	t         float64
}

// NewMock creates a mock sampler. The same seed yields the same readings.
func NewMock(seed int64) *Mock {
	rng := rand.New(rand.NewSource(seed))
	return &Mock{
		rng:       rng,
		base:      config.DemoBaseCm,
		amplitude: config.DemoAmplitudeCm,
		phase:     rng.Float64() * 2 * math.Pi,
	}
}

// Sample returns the next reading in centimetres.
func (m *Mock) Sample(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.t++
	// Sinusoidal drift + noise
	d := m.base + m.amplitude*math.Sin(m.t*0.5+m.phase) + (m.rng.Float64()-0.5)*4
	if d < 2 {
		d = 2
	}
	return int(d), nil
}
