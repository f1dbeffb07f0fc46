package anim

import (
	"math"
	"time"
)

// SettleDuration is the fixed duration of scripted, non-touch settles.
const SettleDuration = 250 * time.Millisecond

const (
	// maxFlingSeconds caps the settle time of a released drag.
	maxFlingSeconds = 0.3
	minFlingSeconds = 0.08
)

// Spec describes how a released divider travels to its snap target.
type Spec struct {
	Duration time.Duration
	Curve    Curve
}

// FlingSpec derives the settle duration from the release velocity and the
// remaining distance. Fast flings cover the distance at their own speed up
// to the cap; slow or still releases get the full cap so the settle stays
// visible.
func FlingSpec(from, to int, velocity float64) Spec {
	distance := math.Abs(float64(to - from))
	seconds := maxFlingSeconds
	if speed := math.Abs(velocity); speed > 1 && distance > 0 {
		seconds = distance / speed
		if seconds > maxFlingSeconds {
			seconds = maxFlingSeconds
		}
		if seconds < minFlingSeconds {
			seconds = minFlingSeconds
		}
	}
	return Spec{
		Duration: time.Duration(seconds * float64(time.Second)),
		Curve:    FastOutSlowIn,
	}
}

// SettleSpec is the fixed-duration spec used for programmatic settles.
func SettleSpec() Spec {
	return Spec{Duration: SettleDuration, Curve: TouchResponse}
}
