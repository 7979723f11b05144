package allocation

import (
	"math"
	"time"
)

type defaultEstimator struct {
	speedKmh   float64
	prepBuffer time.Duration
}

// NewEstimator - creates an Estimator assuming a constant average delivery
// speed plus a fixed preparation buffer.
func NewEstimator(speedKmh float64, prepBuffer time.Duration) Estimator {
	if speedKmh <= 0 {
		speedKmh = 30
	}
	if prepBuffer < 0 {
		prepBuffer = 0
	}
	return defaultEstimator{speedKmh: speedKmh, prepBuffer: prepBuffer}
}

// Estimate returns the delivery estimate in whole minutes and the absolute
// ETA relative to now. Travel minutes and the prep buffer are rounded up.
func (e defaultEstimator) Estimate(distanceKm float64, now time.Time) (int, time.Time) {
	travel := math.Ceil(distanceKm / e.speedKmh * 60)
	prep := math.Ceil(e.prepBuffer.Minutes())
	minutes := int(travel) + int(prep)
	return minutes, now.Add(time.Duration(minutes) * time.Minute)
}
