package anim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/divvy/internal/anim"
)

func TestCubicBezier_Endpoints(t *testing.T) {
	curves := map[string]anim.Curve{
		"touch-response":   anim.TouchResponse,
		"slowdown":         anim.Slowdown,
		"dim":              anim.Dim,
		"fast-out-slow-in": anim.FastOutSlowIn,
	}
	for name, curve := range curves {
		assert.InDelta(t, 0, curve(0), 1e-9, name)
		assert.InDelta(t, 1, curve(1), 1e-9, name)
		assert.Equal(t, 0.0, curve(-0.5), name)
		assert.Equal(t, 1.0, curve(1.5), name)
	}
}

func TestCubicBezier_FastOutSlowInMonotonic(t *testing.T) {
	previous := 0.0
	for i := 1; i <= 100; i++ {
		v := anim.FastOutSlowIn(float64(i) / 100)
		assert.GreaterOrEqual(t, v, previous)
		previous = v
	}
}

func TestCubicBezier_SlowdownFrontLoaded(t *testing.T) {
	// The slowdown curve covers most of its travel early; that is what
	// makes the parallax trail off toward the end of a dismiss.
	assert.Greater(t, anim.Slowdown(0.3), 0.5)
	assert.InDelta(t, 0.875, anim.Slowdown(0.5), 0.01)
}

func TestLinear(t *testing.T) {
	assert.Equal(t, 0.25, anim.Linear(0.25))
	assert.Equal(t, 1.0, anim.Linear(1.0))
}
