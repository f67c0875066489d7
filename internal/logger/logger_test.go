//go:build !integration

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		pretty   bool
		expected zerolog.Level
	}{
		{
			name:     "debug level",
			level:    "debug",
			pretty:   false,
			expected: zerolog.DebugLevel,
		},
		{
			name:     "info level",
			level:    "info",
			pretty:   false,
			expected: zerolog.InfoLevel,
		},
		{
			name:     "warn level",
			level:    "warn",
			pretty:   false,
			expected: zerolog.WarnLevel,
		},
		{
			name:     "error level",
			level:    "error",
			pretty:   false,
			expected: zerolog.ErrorLevel,
		},
		{
			name:     "invalid level defaults to info",
			level:    "invalid",
			pretty:   false,
			expected: zerolog.InfoLevel,
		},
		{
			name:     "pretty output",
			level:    "info",
			pretty:   true,
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, tt.pretty)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
			assert.NotNil(t, Logger())
		})
	}
}

func TestLogger(t *testing.T) {
	Init("info", false)
	logger := Logger()
	assert.NotNil(t, logger)
}
