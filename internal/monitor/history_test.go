package monitor

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	history, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer history.Close()

	now := time.Now()
	samples := []Sample{
		{Timestamp: now, StatusCode: 200, LatencyMS: 10, Endpoint: "/poke/search", Success: true},
		{Timestamp: now, StatusCode: 200, LatencyMS: 20, Endpoint: "/poke/search", Success: true},
		{Timestamp: now, StatusCode: 500, LatencyMS: 30, Endpoint: "/poke/search", Success: false},
		{Timestamp: now, StatusCode: 200, LatencyMS: 99, Endpoint: "/health", Success: true},
	}
	for _, s := range samples {
		require.NoError(t, history.Append(s))
	}

	t.Run("latency averages per day and endpoint", func(t *testing.T) {
		data, labels, err := history.DailyAverages("/poke/search", "latency", 7)
		require.NoError(t, err)
		require.Len(t, data, 1)
		require.Len(t, labels, 1)
		assert.InDelta(t, 20.0, data[0], 0.001)
		assert.Equal(t, now.UTC().Format("01/02"), labels[0])
	})

	t.Run("availability per day excludes other-class samples", func(t *testing.T) {
		// add a 404 that must not affect the ratio
		require.NoError(t, history.Append(Sample{
			Timestamp: now, StatusCode: 404, LatencyMS: 5, Endpoint: "/poke/search",
		}))

		data, _, err := history.DailyAverages("/poke/search", "availability", 7)
		require.NoError(t, err)
		require.Len(t, data, 1)
		assert.InDelta(t, 2.0/3.0*100, data[0], 0.001)
	})

	t.Run("window excludes old samples", func(t *testing.T) {
		require.NoError(t, history.Append(Sample{
			Timestamp: now.AddDate(0, 0, -30), StatusCode: 200, LatencyMS: 500,
			Endpoint: "/poke/search", Success: true,
		}))

		data, _, err := history.DailyAverages("/poke/search", "latency", 7)
		require.NoError(t, err)
		require.Len(t, data, 1, "the 30-day-old sample stays outside a 7-day window")
	})

	t.Run("unknown endpoint has no data", func(t *testing.T) {
		data, _, err := history.DailyAverages("/nope", "latency", 7)
		require.NoError(t, err)
		assert.Empty(t, data)
	})
}
