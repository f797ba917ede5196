package report

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/corridor.report/internal/corridor"
)

// WritePlot renders a PNG of the desire lines (thin grey) with the
// corridor representative lines drawn on top (thick, one color per
// corridor rank).
func WritePlot(w io.Writer, lines []corridor.DesireLine, corridors []corridor.Corridor) error {
	p := plot.New()
	p.Title.Text = "Desire-Line Corridors"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	for _, l := range lines {
		ln, err := plotter.NewLine(plotter.XYs{
			{X: l.StartX, Y: l.StartY},
			{X: l.EndX, Y: l.EndY},
		})
		if err != nil {
			return fmt.Errorf("plot desire line %s: %w", l.ID, err)
		}
		ln.Color = color.Gray{Y: 170}
		ln.Width = vg.Points(0.5)
		p.Add(ln)
	}

	for i, c := range corridors {
		r := c.Representative
		ln, err := plotter.NewLine(plotter.XYs{
			{X: r.StartX, Y: r.StartY},
			{X: r.EndX, Y: r.EndY},
		})
		if err != nil {
			return fmt.Errorf("plot corridor %d: %w", c.ID, err)
		}
		ln.Color = plotutil.Color(i)
		ln.Width = vg.Points(2)
		p.Add(ln)
		p.Legend.Add(fmt.Sprintf("corridor %d (w=%g)", c.ID, c.Weight), ln)
	}

	wt, err := p.WriterTo(8*vg.Inch, 8*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write plot: %w", err)
	}
	return nil
}

// SavePlot renders the PNG to the named file.
func SavePlot(path string, lines []corridor.DesireLine, corridors []corridor.Corridor) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer f.Close()
	return WritePlot(f, lines, corridors)
}
