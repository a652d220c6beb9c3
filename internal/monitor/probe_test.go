package monitor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("search endpoints are POSTed with the default payload", func(t *testing.T) {
		var gotMethod string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		m := New(srv.URL, nil, io.Discard)
		s := m.Probe(ctx, "/poke/search")

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "pikachu", gotBody["Pokemon_Name"])
		assert.True(t, s.Success)
		assert.Equal(t, http.StatusOK, s.StatusCode)
		assert.GreaterOrEqual(t, s.LatencyMS, 0.0)
	})

	t.Run("other endpoints are probed with GET", func(t *testing.T) {
		var gotMethod string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			w.Write([]byte(`{"status":"healthy"}`))
		}))
		defer srv.Close()

		m := New(srv.URL, nil, io.Discard)
		s := m.Probe(ctx, "/health")

		assert.Equal(t, http.MethodGet, gotMethod)
		assert.True(t, s.Success)
	})

	t.Run("non-200 is recorded but not successful", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		m := New(srv.URL, nil, io.Discard)
		s := m.Probe(ctx, "/health")

		assert.False(t, s.Success)
		assert.Equal(t, http.StatusBadGateway, s.StatusCode)
	})

	t.Run("transport failure is classified as 500, not an error", func(t *testing.T) {
		m := New("http://127.0.0.1:1", nil, io.Discard)
		s := m.Probe(ctx, "/health")

		assert.False(t, s.Success)
		assert.Equal(t, http.StatusInternalServerError, s.StatusCode)
		assert.GreaterOrEqual(t, s.LatencyMS, 0.0)
	})

	t.Run("samples are appended to the history", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		history, err := OpenHistory(t.TempDir() + "/history.db")
		require.NoError(t, err)
		defer history.Close()

		m := New(srv.URL, history, io.Discard)
		m.Probe(ctx, "/health")
		m.Probe(ctx, "/health")

		data, _, err := history.DailyAverages("/health", "latency", 1)
		require.NoError(t, err)
		require.Len(t, data, 1, "both probes land on today's bucket")
	})
}
