package divider

import "time"

// velocityWindow bounds how far back samples contribute to the velocity
// estimate. Old samples would smear quick direction changes at the end of a
// fling.
const velocityWindow = 100 * time.Millisecond

type velocitySample struct {
	t time.Time
	x int
	y int
}

// VelocityTracker estimates the pointer velocity from recent move samples.
type VelocityTracker struct {
	samples []velocitySample
}

// Add records a pointer sample and drops samples older than the window.
func (v *VelocityTracker) Add(t time.Time, x, y int) {
	v.samples = append(v.samples, velocitySample{t: t, x: x, y: y})
	cutoff := t.Add(-velocityWindow)
	first := 0
	for first < len(v.samples)-1 && v.samples[first].t.Before(cutoff) {
		first++
	}
	v.samples = v.samples[first:]
}

// VelocityX returns the horizontal velocity in px/s.
func (v *VelocityTracker) VelocityX() float64 {
	return v.velocity(func(s velocitySample) int { return s.x })
}

// VelocityY returns the vertical velocity in px/s.
func (v *VelocityTracker) VelocityY() float64 {
	return v.velocity(func(s velocitySample) int { return s.y })
}

func (v *VelocityTracker) velocity(axis func(velocitySample) int) float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(axis(last)-axis(first)) / dt
}

// Reset discards all samples at the start of a new gesture.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}
