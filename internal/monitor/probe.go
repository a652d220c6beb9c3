// Package monitor implements the latency/availability sampler behind the
// pokewatch console tool.
package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Sample is the outcome of one probe. Samples are held in memory for the
// duration of a check and appended to the history store for the graphs.
type Sample struct {
	Timestamp  time.Time
	StatusCode int
	LatencyMS  float64
	Endpoint   string
	Success    bool
}

// defaultPayload is the body sent to the search endpoint when probing.
var defaultPayload = map[string]string{"Pokemon_Name": "pikachu"}

// Monitor probes a running service and reports on its behavior.
type Monitor struct {
	BaseURL string
	client  *http.Client
	history *History
	out     io.Writer
}

// New creates a monitor. history may be nil, in which case probes are not
// persisted and the graphs fall back to illustrative data.
func New(baseURL string, history *History, out io.Writer) *Monitor {
	return &Monitor{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		history: history,
		out:     out,
	}
}

// Probe issues one timed request. Search endpoints are POSTed with the
// default payload, everything else is GET. Transport failures are
// classified as status 500 rather than returned as errors so that one
// bad probe never aborts a sampling loop.
func (m *Monitor) Probe(ctx context.Context, endpoint string) Sample {
	start := time.Now()

	var resp *http.Response
	var err error
	if strings.HasSuffix(endpoint, "/search") {
		body, _ := json.Marshal(defaultPayload)
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+endpoint, bytes.NewReader(body))
		if err == nil {
			req.Header.Set("Content-Type", "application/json")
			resp, err = m.client.Do(req)
		}
	} else {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, m.BaseURL+endpoint, nil)
		if err == nil {
			resp, err = m.client.Do(req)
		}
	}

	latency := float64(time.Since(start).Microseconds()) / 1000.0

	s := Sample{
		Timestamp: time.Now(),
		LatencyMS: latency,
		Endpoint:  endpoint,
	}
	if err != nil {
		s.StatusCode = http.StatusInternalServerError
		s.Success = false
	} else {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		s.StatusCode = resp.StatusCode
		s.Success = resp.StatusCode == http.StatusOK
	}

	if m.history != nil {
		if err := m.history.Append(s); err != nil {
			fmt.Fprintf(m.out, "warning: could not record sample: %v\n", err)
		}
	}
	return s
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
