package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			SetLogLevel(tt.level)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestIsValidLevel(t *testing.T) {
	assert.True(t, IsValidLevel("debug"))
	assert.True(t, IsValidLevel("warn"))
	assert.False(t, IsValidLevel("warning"))
	assert.False(t, IsValidLevel(""))
}

func TestGetLogger_ComponentField(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	InitializeWithWriter(false, &buf)

	logger := GetLogger("clock")
	logger.Info().Str("line", "Sun, Jan").Msg("rendered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "clock", entry["component"])
	assert.Equal(t, "Sun, Jan", entry["line"])
	assert.Equal(t, "rendered", entry["message"])
	assert.Contains(t, entry, "time")
}
