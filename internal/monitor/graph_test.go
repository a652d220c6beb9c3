package monitor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowFor(t *testing.T) {
	t.Run("minimum maps to the bottom row", func(t *testing.T) {
		assert.Equal(t, 14, rowFor(10, 10, 20, graphHeight))
	})

	t.Run("maximum maps to the top row", func(t *testing.T) {
		assert.Equal(t, 0, rowFor(20, 10, 20, graphHeight))
	})

	t.Run("degenerate range maps to the midpoint", func(t *testing.T) {
		assert.Equal(t, 7, rowFor(42, 42, 42, graphHeight))
	})
}

func TestPlotGrid(t *testing.T) {
	t.Run("one column per sample", func(t *testing.T) {
		grid := plotGrid([]float64{10, 20, 10}, graphHeight)
		require.Len(t, grid, graphHeight)
		for _, row := range grid {
			assert.Len(t, row, 3)
		}
	})

	t.Run("points land on their rows", func(t *testing.T) {
		grid := plotGrid([]float64{10, 20, 10}, graphHeight)
		assert.Equal(t, '●', grid[14][0])
		assert.Equal(t, '●', grid[0][1])
		assert.Equal(t, '●', grid[14][2])
	})

	t.Run("connectors fill the previous column", func(t *testing.T) {
		grid := plotGrid([]float64{10, 20, 10}, graphHeight)
		// climb from row 14 to row 0 is drawn in column 0
		for y := 0; y < 14; y++ {
			assert.Equal(t, '│', grid[y][0], "row %d", y)
		}
		// descent back down is drawn in column 1
		for y := 1; y <= 14; y++ {
			assert.Equal(t, '│', grid[y][1], "row %d", y)
		}
	})

	t.Run("constant series sits on the middle row", func(t *testing.T) {
		grid := plotGrid([]float64{5, 5, 5, 5}, graphHeight)
		for x := 0; x < 4; x++ {
			assert.Equal(t, '●', grid[7][x])
		}
	})
}

func TestSyntheticSeries(t *testing.T) {
	t.Run("latency values are capped at 200", func(t *testing.T) {
		data, labels := syntheticSeries("latency", 30)
		require.Len(t, data, 30)
		require.Len(t, labels, 30)
		for _, v := range data {
			assert.LessOrEqual(t, v, 200.0)
			assert.GreaterOrEqual(t, v, 50.0)
		}
	})

	t.Run("availability values are capped at 100", func(t *testing.T) {
		data, _ := syntheticSeries("availability", 10)
		for _, v := range data {
			assert.LessOrEqual(t, v, 100.0)
			assert.GreaterOrEqual(t, v, 85.0)
		}
	})
}

func TestDrawGraph(t *testing.T) {
	t.Run("renders axis labels and statistics", func(t *testing.T) {
		var buf bytes.Buffer
		drawGraph(&buf, []float64{10, 20, 10}, []string{"01/01", "01/02", "01/03"}, "latency")

		out := buf.String()
		assert.Contains(t, out, "Latency Trend Graph (10.0-20.0 ms)")
		assert.Contains(t, out, "Average: 13.33 ms")
		assert.Contains(t, out, "Min: 10.00 ms")
		assert.Contains(t, out, "Max: 20.00 ms")
		assert.Contains(t, out, "01/02")
		assert.Contains(t, out, "└───", "x axis is drawn under the grid")
		assert.GreaterOrEqual(t, strings.Count(out, "\n"), graphHeight+4)
	})

	t.Run("empty data prints a notice", func(t *testing.T) {
		var buf bytes.Buffer
		drawGraph(&buf, nil, nil, "latency")
		assert.Contains(t, buf.String(), "No data to display")
	})
}
