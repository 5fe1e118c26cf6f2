package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var circleColor = color.RGBA{R: 0x89, G: 0xbd, B: 0xd3, A: 0xff}

// PNG writes a static snapshot of state using the same domains as the SVG
// chart. Records with a non-finite coordinate are left out.
func PNG(w io.Writer, s chart.State) error {
	p := plot.New()
	p.X.Label.Text = chart.CaptionText(s.Field)
	p.Y.Label.Text = chart.YCaption
	p.X.Min, p.X.Max = min(s.X.Domain[0], s.X.Domain[1]), max(s.X.Domain[0], s.X.Domain[1])
	p.Y.Min, p.Y.Max = min(s.Y.Domain[0], s.Y.Domain[1]), max(s.Y.Domain[0], s.Y.Domain[1])
	p.Add(plotter.NewGrid())

	var (
		xys    plotter.XYs
		labels []string
	)
	for _, r := range s.Records {
		x, y := r.Value(s.Field), r.NewWeeklyCasesPer100k
		if !finite(x) || !finite(y) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
		labels = append(labels, r.StateCode)
	}

	if len(xys) > 0 {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("failed to build scatter: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = circleColor
		sc.GlyphStyle.Radius = pixels(s.Layout.Radius)

		lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
		if err != nil {
			return fmt.Errorf("failed to build labels: %w", err)
		}
		for i := range lbl.TextStyle {
			lbl.TextStyle[i].XAlign = text.XCenter
			lbl.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(sc, lbl)
	}

	wt, err := p.WriterTo(pixels(float64(s.Layout.Width)), pixels(float64(s.Layout.Height)), "png")
	if err != nil {
		return fmt.Errorf("failed to create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

// pixels converts a pixel count at 96 DPI to a vg length.
func pixels(n float64) vg.Length {
	return vg.Length(n) * vg.Inch / 96
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
