package render

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/qusimlab/qusim/internal/solver"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Green,
}

// Plot charts every expectation series of a result on shared axes.
func Plot(res *solver.Result, width, height int, title string) string {
	if len(res.Series) == 0 {
		return ""
	}
	data := make([][]float64, len(res.Series))
	legends := make([]string, len(res.Series))
	colors := make([]asciigraph.AnsiColor, len(res.Series))
	for i, s := range res.Series {
		data[i] = s.Values
		legends[i] = s.Name
		colors[i] = seriesColors[i%len(seriesColors)]
	}
	caption := title
	if n := len(res.Times); n > 1 {
		caption = fmt.Sprintf("%s   t ∈ [0, %.0f]", title, res.Times[n-1])
	}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(caption),
	)
}

// PlotSeries charts a single named series from a result.
func PlotSeries(res *solver.Result, name string, width, height int) (string, error) {
	vals := res.Get(name)
	if vals == nil {
		return "", fmt.Errorf("render: result has no series %q", name)
	}
	return asciigraph.Plot(vals,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(name),
	), nil
}
