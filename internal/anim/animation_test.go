package anim_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/divvy/internal/anim"
)

func TestAnimation_Tick(t *testing.T) {
	start := time.Now()
	a := anim.NewAnimation(100, 200, 100*time.Millisecond, anim.Linear)

	value, fraction, done := a.Tick(start)
	assert.Equal(t, 100.0, value)
	assert.Equal(t, 0.0, fraction)
	assert.False(t, done)

	value, fraction, done = a.Tick(start.Add(50 * time.Millisecond))
	assert.InDelta(t, 150, value, 1e-9)
	assert.InDelta(t, 0.5, fraction, 1e-9)
	assert.False(t, done)

	value, fraction, done = a.Tick(start.Add(100 * time.Millisecond))
	assert.Equal(t, 200.0, value)
	assert.Equal(t, 1.0, fraction)
	assert.True(t, done)
}

func TestAnimation_TicksAfterCompletionStayFinal(t *testing.T) {
	start := time.Now()
	a := anim.NewAnimation(0, 10, 10*time.Millisecond, nil)

	a.Tick(start)
	value, fraction, done := a.Tick(start.Add(time.Second))
	assert.Equal(t, 10.0, value)
	assert.Equal(t, 1.0, fraction)
	assert.True(t, done)

	value, _, done = a.Tick(start.Add(2 * time.Second))
	assert.Equal(t, 10.0, value)
	assert.True(t, done)
}

func TestFlingSpec(t *testing.T) {
	// A fast fling covers the distance at its own pace.
	spec := anim.FlingSpec(400, 600, 2000)
	assert.Equal(t, 100*time.Millisecond, spec.Duration)
	assert.NotNil(t, spec.Curve)

	// A slow release takes the full cap.
	spec = anim.FlingSpec(400, 600, 0)
	assert.Equal(t, 300*time.Millisecond, spec.Duration)

	// Very fast flings are floored so the settle stays visible.
	spec = anim.FlingSpec(400, 410, 9000)
	assert.Equal(t, 80*time.Millisecond, spec.Duration)

	// Very slow flings over a long distance are capped.
	spec = anim.FlingSpec(0, 1000, 100)
	assert.Equal(t, 300*time.Millisecond, spec.Duration)
}

func TestSettleSpec(t *testing.T) {
	spec := anim.SettleSpec()
	assert.Equal(t, anim.SettleDuration, spec.Duration)
	assert.NotNil(t, spec.Curve)
}
