package sensor

import (
	"math"
	"time"

	"proximity.klederson.com/internal/config"
)

// EchoToDistance converts the width of an HC-SR04 echo pulse into whole
// centimetres. Sound covers the distance twice, hence the halving.
func EchoToDistance(echo time.Duration) int {
	if echo <= 0 {
		return 0
	}
	return int(float64(echo.Microseconds()) * config.SoundCmPerUs / 2)
}

// RSSIToDistance estimates distance from RSSI using the log-distance path loss model.
// Formula: d = 10^((measuredPower - rssi) / (10 * n))
func RSSIToDistance(rssi, measuredPower, pathLossExp float64) float64 {
	if rssi >= 0 {
		return 0.1
	}
	d := math.Pow(10, (measuredPower-rssi)/(10*pathLossExp))
	if d < 0.1 {
		return 0.1
	}
	return d
}
