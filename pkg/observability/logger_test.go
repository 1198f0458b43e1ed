package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:       "info",
		Format:      LogFormatText,
		Output:      &buf,
		ServiceName: "tempo-test",
	})

	logger.Info("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "service=tempo-test")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  "info",
		Format: LogFormatJSON,
		Output: &buf,
	})

	logger.Info("structured entry", "count", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "structured entry", entry["msg"])
	assert.Equal(t, float64(3), entry["count"])
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  "warn",
		Format: LogFormatText,
		Output: &buf,
	})

	logger.Info("dropped")
	logger.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseLevel(tt.input), "level %q", tt.input)
	}
}

func TestInMemoryMetrics(t *testing.T) {
	metrics := NewInMemoryMetrics()

	metrics.Counter("scheduling.blocks_inserted", 1)
	metrics.Counter("scheduling.blocks_inserted", 2)
	metrics.Gauge("scheduling.store_size", 12)
	metrics.Timing("scheduling.slot_search", 5*time.Millisecond)
	metrics.Timing("scheduling.slot_search", 7*time.Millisecond)

	assert.Equal(t, int64(3), metrics.CounterValue("scheduling.blocks_inserted"))
	assert.Equal(t, float64(12), metrics.GaugeValue("scheduling.store_size"))
	assert.Equal(t, 2, metrics.TimingCount("scheduling.slot_search"))
}

func TestInMemoryMetrics_TagsSeparateSeries(t *testing.T) {
	metrics := NewInMemoryMetrics()

	metrics.Counter("planned", 1, T("source", "task"))
	metrics.Counter("planned", 5, T("source", "habit"))

	assert.Equal(t, int64(1), metrics.CounterValue("planned", T("source", "task")))
	assert.Equal(t, int64(5), metrics.CounterValue("planned", T("source", "habit")))
	assert.Equal(t, int64(0), metrics.CounterValue("planned"))
}
