// Package report renders corridor clustering results as standalone
// artifacts: an interactive HTML chart and a static PNG plot.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

// RenderChart writes an HTML chart of the input desire lines (midpoint
// scatter, weight as the color dimension) overlaid with the ranked
// corridor representative lines.
func RenderChart(w io.Writer, lines []corridor.DesireLine, corridors []corridor.Corridor) error {
	data := make([]opts.ScatterData, 0, len(lines))
	maxAbs := 0.0
	maxWeight := 0.0
	for _, l := range lines {
		x := (l.StartX + l.EndX) / 2
		y := (l.StartY + l.EndY) / 2
		for _, v := range []float64{l.StartX, l.EndX, x} {
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
		for _, v := range []float64{l.StartY, l.EndY, y} {
			if math.Abs(v) > maxAbs {
				maxAbs = math.Abs(v)
			}
		}
		if l.Weight > maxWeight {
			maxWeight = l.Weight
		}
		data = append(data, opts.ScatterData{Value: []interface{}{x, y, l.Weight}})
	}

	// Pad the axes so endpoints stay visible, and keep the plot square.
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	if maxWeight == 0 {
		maxWeight = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Desire-Line Corridors", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Desire-Line Corridors", Subtitle: fmt.Sprintf("lines=%d corridors=%d", len(lines), len(corridors))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxWeight),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("desire lines", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	line := charts.NewLine()
	for _, c := range corridors {
		r := c.Representative
		line.AddSeries(
			fmt.Sprintf("corridor %d (w=%g)", c.ID, c.Weight),
			[]opts.LineData{
				{Value: []interface{}{r.StartX, r.StartY}},
				{Value: []interface{}{r.EndX, r.EndY}},
			},
		)
	}
	scatter.Overlap(line)

	return scatter.Render(w)
}
