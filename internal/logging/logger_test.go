package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "level %q", tt.in)
	}
}

func TestNewFromConfigValues(t *testing.T) {
	logger := NewFromConfigValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	// Unknown formats fall back to the default instead of failing.
	logger = NewFromConfigValues("warn", "xml")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DIVVY_LOG_LEVEL", "error")
	t.Setenv("DIVVY_LOG_FORMAT", "json")

	logger := NewFromEnv()
	assert.Equal(t, zerolog.ErrorLevel, logger.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := NewFromConfigValues("debug", "json")
	ctx := WithContext(context.Background(), logger)

	got := FromContext(ctx)
	assert.Equal(t, zerolog.DebugLevel, got.GetLevel())

	scoped := WithComponent(ctx, "engine")
	assert.NotNil(t, FromContext(scoped))
}
