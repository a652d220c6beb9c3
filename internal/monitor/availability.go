package monitor

import (
	"context"
	"fmt"
	"time"
)

// availabilityInterval is the pause between availability probes.
const availabilityInterval = 500 * time.Millisecond

// maxAvailabilityProbes caps the probe count regardless of the window.
const maxAvailabilityProbes = 100

// AvailabilityReport summarizes one availability check. Availability
// counts only 2xx-vs-5xx outcomes: probes classified "other" are
// excluded from the denominator entirely.
type AvailabilityReport struct {
	Endpoint      string
	Days          int
	TotalRequests int
	SuccessCount  int
	ErrorCount    int
	Availability  float64
	SuccessRate   float64
}

// Status maps the availability percentage to an operator-facing tier.
func (r AvailabilityReport) Status() string {
	switch {
	case r.Availability >= 99:
		return "EXCELLENT"
	case r.Availability >= 95:
		return "GOOD"
	default:
		return "NEEDS ATTENTION"
	}
}

// CheckAvailability issues a probe count proportional to the day window,
// capped at 100, and classifies each outcome.
func (m *Monitor) CheckAvailability(ctx context.Context, endpoint string, days int) AvailabilityReport {
	fmt.Fprintf(m.out, "\nChecking availability for %s over %d day(s)...\n", endpoint, days)

	total := days * 50
	if total > maxAvailabilityProbes {
		total = maxAvailabilityProbes
	}

	var samples []Sample
	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			break
		}

		s := m.Probe(ctx, endpoint)
		samples = append(samples, s)

		status := "OTHER  "
		switch {
		case s.StatusCode == 200:
			status = "SUCCESS"
		case s.StatusCode >= 500:
			status = "ERROR  "
		}
		fmt.Fprintf(m.out, "Request %3d/%d | %s | Code: %d | Time: %.2fms\n",
			i+1, total, status, s.StatusCode, s.LatencyMS)

		if i < total-1 && !sleep(ctx, availabilityInterval) {
			break
		}
	}

	return availabilityReport(endpoint, days, samples)
}

func availabilityReport(endpoint string, days int, samples []Sample) AvailabilityReport {
	r := AvailabilityReport{
		Endpoint:      endpoint,
		Days:          days,
		TotalRequests: len(samples),
	}

	for _, s := range samples {
		switch {
		case s.StatusCode == 200:
			r.SuccessCount++
		case s.StatusCode >= 500:
			r.ErrorCount++
		}
	}

	if relevant := r.SuccessCount + r.ErrorCount; relevant > 0 {
		r.Availability = float64(r.SuccessCount) / float64(relevant) * 100
	}
	if r.TotalRequests > 0 {
		r.SuccessRate = float64(r.SuccessCount) / float64(r.TotalRequests) * 100
	}
	return r
}
