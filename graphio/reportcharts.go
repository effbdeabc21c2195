package graphio

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/paretosp/bsp"
)

// RenderStatsChart renders an HTML line chart of the per-run iteration
// and Pareto-minima counts gathered in stats, the Go-ecosystem
// analogue of the original harness's statistics printer.
func RenderStatsChart(stats []bsp.Stats, w io.Writer) error {
	labels := make([]string, len(stats))
	iterations := make([]opts.LineData, len(stats))
	minima := make([]opts.LineData, len(stats))
	for i, s := range stats {
		labels[i] = strconv.Itoa(i + 1)
		iterations[i] = opts.LineData{Value: s.Iterations}
		minima[i] = opts.LineData{Value: s.MinimaCount}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Search statistics per run"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "run"}),
	)
	line.SetXAxis(labels).
		AddSeries("Iterations", iterations).
		AddSeries("Pareto minima found", minima)

	return line.Render(w)
}
