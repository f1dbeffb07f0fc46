package anim

import "time"

// Animation interpolates a scalar from one value to another over a fixed
// duration. It carries no callbacks: the owner advances it once per display
// frame with Tick and acts on the returned value and completion flag.
type Animation struct {
	from     float64
	to       float64
	duration time.Duration
	curve    Curve

	started bool
	start   time.Time
}

// NewAnimation creates an animation from from to to over duration. The clock
// starts on the first Tick. A nil curve means linear.
func NewAnimation(from, to float64, duration time.Duration, curve Curve) *Animation {
	if curve == nil {
		curve = Linear
	}
	if duration <= 0 {
		duration = time.Millisecond
	}
	return &Animation{from: from, to: to, duration: duration, curve: curve}
}

// Tick advances the animation to now and returns the interpolated value, the
// raw time fraction in [0,1] and whether the animation has completed. Ticks
// after completion keep returning the final value.
func (a *Animation) Tick(now time.Time) (value, fraction float64, done bool) {
	if !a.started {
		a.started = true
		a.start = now
	}
	fraction = float64(now.Sub(a.start)) / float64(a.duration)
	if fraction >= 1 {
		return a.to, 1, true
	}
	if fraction < 0 {
		fraction = 0
	}
	return a.from + a.curve(fraction)*(a.to-a.from), fraction, false
}

// To returns the terminal value of the animation.
func (a *Animation) To() float64 { return a.to }
