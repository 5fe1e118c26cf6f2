// Package render writes chart scenes as SVG documents and PNG snapshots.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

const (
	tickSize    = 6
	tickPadding = 3
)

// Stylesheet is embedded in every SVG so that standalone files look the
// same as the served page.
const Stylesheet = `
.stateCircle { fill: #89bdd3; stroke: #e3e3e3; }
.stateText { font-family: sans-serif; font-size: 12px; font-weight: bold; fill: #fff; text-anchor: middle; }
.domain, .tick line { stroke: currentColor; }
.tick text { font-family: sans-serif; font-size: 10px; fill: currentColor; }
.aText { font-family: sans-serif; font-size: 16px; text-anchor: middle; cursor: pointer; }
.aText.active { font-weight: bold; fill: #000; }
.aText.inactive { font-weight: lighter; fill: #c9c9c9; }
.aText.inactive:hover { fill: #000; }
.axis-text { font-family: sans-serif; font-size: 16px; text-anchor: middle; font-weight: bold; }
`

// errWriter keeps the first write error; svgo itself does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVG writes scene as a standalone SVG document. A non-nil transition turns
// it into an update paint: circles, labels and x axis ticks animate from
// their old positions to the scene's positions.
func SVG(w io.Writer, scene models.Scene, tr *models.Transition) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	canvas.Start(scene.Width, scene.Height,
		`class="vaxscatter"`,
		attr("data-field", string(scene.Field)))
	canvas.Style("text/css", Stylesheet)

	canvas.Gtransform(translate(scene.Margin.Left, scene.Margin.Top))
	xAxis(canvas, scene, tr)
	yAxis(canvas, scene)
	points(canvas, scene, tr)
	captions(canvas, scene)
	canvas.Gend()

	canvas.End()
	return ew.err
}

func xAxis(canvas *svg.SVG, scene models.Scene, tr *models.Transition) {
	canvas.Group(`class="x-axis"`, attr("transform", translate(0, px(scene.XAxis.OffsetY))))
	canvas.Line(0, 0, px(scene.XAxis.Length), 0, `class="domain"`)

	if tr == nil {
		for i, t := range scene.XAxis.Ticks {
			xTick(canvas, tickID(i), t)
			canvas.Gend()
		}
	} else {
		for i, tm := range tr.Ticks {
			id := tickID(i)
			xTick(canvas, id, tm.Tick)
			canvas.AnimateTranslate("#"+id, px(tm.From), 0, px(tm.Tick.Pos), 0, tr.Duration, 1, `fill="freeze"`)
			if tm.Exit {
				canvas.Animate("#"+id, "opacity", 1, 0, tr.Duration, 1, `fill="freeze"`)
			}
			canvas.Gend()
		}
	}

	canvas.Gend()
}

// xTick opens the tick group; the caller closes it.
func xTick(canvas *svg.SVG, id string, t models.Tick) {
	canvas.Group(attr("id", id), `class="tick"`, attr("transform", translate(px(t.Pos), 0)))
	canvas.Line(0, 0, 0, tickSize)
	canvas.Text(0, tickSize+tickPadding, t.Label, `dy="0.71em"`, "text-anchor:middle")
}

func yAxis(canvas *svg.SVG, scene models.Scene) {
	canvas.Group(`class="y-axis"`)
	canvas.Line(0, 0, 0, px(scene.YAxis.Length), `class="domain"`)
	for _, t := range scene.YAxis.Ticks {
		canvas.Group(`class="tick"`, attr("transform", translate(0, px(t.Pos))))
		canvas.Line(-tickSize, 0, 0, 0)
		canvas.Text(-(tickSize + tickPadding), 0, t.Label, `dy="0.32em"`, "text-anchor:end")
		canvas.Gend()
	}
	canvas.Gend()
}

func points(canvas *svg.SVG, scene models.Scene, tr *models.Transition) {
	canvas.Group(`class="points"`)
	for _, p := range scene.Points {
		canvas.Group(attr("id", p.ID), `class="state"`)
		canvas.Title(p.Tooltip)
		canvas.Circle(px(p.CX), px(p.CY), px(p.R), attr("id", p.ID+"-circle"), `class="stateCircle"`)
		canvas.Text(px(p.LabelX), px(p.LabelY), p.Label, attr("id", p.ID+"-label"), `class="stateText"`)
		canvas.Gend()
	}
	canvas.Gend()

	if tr == nil {
		return
	}
	for _, m := range tr.Circles {
		canvas.Animate("#"+m.ID+"-circle", "cx", px(m.From), px(m.To), tr.Duration, 1, `fill="freeze"`)
	}
	for _, m := range tr.Labels {
		canvas.Animate("#"+m.ID+"-label", "x", px(m.From), px(m.To), tr.Duration, 1, `fill="freeze"`)
	}
}

func captions(canvas *svg.SVG, scene models.Scene) {
	canvas.Group(`class="x-captions"`,
		attr("transform", translate(px(scene.PlotWidth/2), px(scene.PlotHeight)+20)))
	for _, c := range scene.Captions {
		canvas.Text(0, px(c.Y), c.Text,
			attr("class", "aText "+c.Class()),
			attr("value", string(c.Field)),
			attr("data-field", string(c.Field)))
	}
	canvas.Gend()

	canvas.Text(-px(scene.PlotHeight/2), -scene.Margin.Left, scene.YCaption,
		`transform="rotate(-90)"`, `dy="1em"`, `class="axis-text"`)
}

func tickID(i int) string {
	return fmt.Sprintf("xtick-%d", i)
}

func translate(x, y int) string {
	return fmt.Sprintf("translate(%d,%d)", x, y)
}

func attr(name, value string) string {
	return fmt.Sprintf("%s=%q", name, value)
}

// px rounds to a whole pixel. Non-finite positions, which come from
// malformed input, collapse to 0 the way a browser ignores a NaN attribute.
func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
