package monitor

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckLatency(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	t.Run("zero duration yields an empty report", func(t *testing.T) {
		var buf bytes.Buffer
		m := New(srv.URL, nil, &buf)
		r := m.CheckLatency(context.Background(), "/health", 0)
		assert.Equal(t, 0, r.TotalRequests)
	})

	t.Run("cancellation yields a partial report", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var buf bytes.Buffer
		m := New(srv.URL, nil, &buf)

		// cancel during the first inter-probe sleep
		go func() {
			time.Sleep(100 * time.Millisecond)
			cancel()
		}()

		r := m.CheckLatency(ctx, "/health", time.Minute)
		assert.Equal(t, 1, r.TotalRequests)
		assert.Contains(t, buf.String(), "stopped by user")
	})
}

func TestCheckAvailabilityCap(t *testing.T) {
	t.Run("zero-day window issues no probes", func(t *testing.T) {
		var buf bytes.Buffer
		m := New("http://127.0.0.1:1", nil, &buf)
		r := m.CheckAvailability(context.Background(), "/health", 0)
		assert.Equal(t, 0, r.TotalRequests)
		assert.Equal(t, 0.0, r.Availability)
	})
}
