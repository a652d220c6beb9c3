package monitor

import (
	"context"
	"fmt"
	"time"
)

// probeInterval is the pause between latency probes.
const probeInterval = 2 * time.Second

// LatencyReport summarizes one latency check.
type LatencyReport struct {
	Endpoint      string
	Duration      time.Duration
	TotalRequests int
	AvgLatency    float64
	MinLatency    float64
	MaxLatency    float64
	MedianLatency float64
	SuccessRate   float64
}

// CheckLatency probes the endpoint every two seconds until the duration
// elapses or ctx is cancelled. Cancellation still yields a report from
// whatever samples were gathered.
func (m *Monitor) CheckLatency(ctx context.Context, endpoint string, duration time.Duration) LatencyReport {
	fmt.Fprintf(m.out, "\nChecking latency for %s during %s...\n", endpoint, duration)
	fmt.Fprintln(m.out, "Press Ctrl+C to stop early")

	var samples []Sample
	deadline := time.Now().Add(duration)

	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			fmt.Fprintln(m.out, "\nLatency check stopped by user")
			break
		}

		s := m.Probe(ctx, endpoint)
		samples = append(samples, s)

		icon := "OK "
		if !s.Success {
			icon = "ERR"
		}
		fmt.Fprintf(m.out, "%s %s | Status: %d | Latency: %.2fms\n",
			icon, s.Timestamp.Format("15:04:05"), s.StatusCode, s.LatencyMS)

		if !sleep(ctx, probeInterval) {
			fmt.Fprintln(m.out, "\nLatency check stopped by user")
			break
		}
	}

	return latencyReport(endpoint, duration, samples)
}

func latencyReport(endpoint string, duration time.Duration, samples []Sample) LatencyReport {
	r := LatencyReport{
		Endpoint:      endpoint,
		Duration:      duration,
		TotalRequests: len(samples),
	}
	if len(samples) == 0 {
		return r
	}

	latencies := make([]float64, len(samples))
	successes := 0
	for i, s := range samples {
		latencies[i] = s.LatencyMS
		if s.Success {
			successes++
		}
	}

	r.AvgLatency = mean(latencies)
	r.MedianLatency = median(latencies)
	r.MinLatency, r.MaxLatency = minMax(latencies)
	r.SuccessRate = float64(successes) / float64(len(samples)) * 100
	return r
}
