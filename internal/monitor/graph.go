package monitor

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// graphHeight is the vertical resolution of the ASCII grid.
const graphHeight = 15

// RenderGraph draws a daily trend for "latency" or "availability". When
// the history store holds samples for the window the per-day averages
// are plotted; otherwise an illustrative synthetic series is shown.
func (m *Monitor) RenderGraph(metric, endpoint string, days int) {
	fmt.Fprintf(m.out, "\nRendering %s graph for %s over %d days...\n", metric, endpoint, days)

	var data []float64
	var labels []string
	if m.history != nil {
		data, labels, _ = m.history.DailyAverages(endpoint, metric, days)
	}
	if len(data) < 2 {
		fmt.Fprintln(m.out, "No recorded history for this window, generating sample data...")
		data, labels = syntheticSeries(metric, days)
	}

	drawGraph(m.out, data, labels, metric)
}

// syntheticSeries reproduces the illustrative data the tool has always
// charted when no real samples exist.
func syntheticSeries(metric string, days int) ([]float64, []string) {
	data := make([]float64, 0, days)
	labels := make([]string, 0, days)

	for i := 0; i < days; i++ {
		date := time.Now().AddDate(0, 0, -(days - i - 1))
		labels = append(labels, date.Format("01/02"))

		if strings.EqualFold(metric, "latency") {
			data = append(data, math.Min(float64(50+i*10+(i%3)*20), 200))
		} else {
			data = append(data, math.Min(float64(85+i*2+(i%2)*5), 100))
		}
	}
	return data, labels
}

// rowFor maps a value to a grid row. Row 0 is the top of the grid; the
// minimum value lands on the bottom row. Equal min and max degenerate to
// the vertical midpoint.
func rowFor(v, lo, hi float64, height int) int {
	if hi <= lo {
		return height / 2
	}
	normalized := (v - lo) / (hi - lo)
	return int(math.Round(float64(height-1) * (1 - normalized)))
}

// plotGrid places each point on a height×len(data) grid and fills
// vertical connector segments between consecutive points. Connectors are
// drawn in the previous point's column.
func plotGrid(data []float64, height int) [][]rune {
	lo, hi := minMax(data)

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, len(data))
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	for i, v := range data {
		y := rowFor(v, lo, hi, height)
		grid[y][i] = '●'

		if i > 0 {
			prevY := rowFor(data[i-1], lo, hi, height)
			startY, endY := prevY, y
			if startY > endY {
				startY, endY = endY, startY
			}
			for lineY := startY; lineY <= endY; lineY++ {
				if grid[lineY][i-1] == ' ' {
					if startY != endY {
						grid[lineY][i-1] = '│'
					} else {
						grid[lineY][i-1] = '●'
					}
				}
			}
		}
	}
	return grid
}

func drawGraph(out io.Writer, data []float64, labels []string, metric string) {
	if len(data) == 0 {
		fmt.Fprintln(out, "No data to display")
		return
	}

	lo, hi := minMax(data)
	unit := "%"
	if strings.EqualFold(metric, "latency") {
		unit = "ms"
	}

	title := metric
	if title != "" {
		title = strings.ToUpper(title[:1]) + title[1:]
	}
	fmt.Fprintf(out, "%s Trend Graph (%.1f-%.1f %s)\n", title, lo, hi, unit)
	fmt.Fprintln(out, strings.Repeat("─", len(data)+10))

	grid := plotGrid(data, graphHeight)
	for i, row := range grid {
		yValue := hi
		if hi > lo {
			yValue = hi - float64(i)/float64(graphHeight-1)*(hi-lo)
		}
		fmt.Fprintf(out, "%6.1f │%s\n", yValue, string(row))
	}

	fmt.Fprintln(out, "       └"+strings.Repeat("─", len(data)))
	var x strings.Builder
	x.WriteString("        ")
	for _, label := range labels {
		fmt.Fprintf(&x, "%5s", label)
	}
	fmt.Fprintln(out, x.String())

	fmt.Fprintln(out, "\nStatistics:")
	fmt.Fprintf(out, "  Average: %.2f %s\n", mean(data), unit)
	fmt.Fprintf(out, "  Min: %.2f %s\n", lo, unit)
	fmt.Fprintf(out, "  Max: %.2f %s\n", hi, unit)
}
