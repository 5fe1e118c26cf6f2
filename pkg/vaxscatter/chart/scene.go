package chart

import (
	"fmt"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/scale"
)

// YCaption is the rotated caption of the y axis.
const YCaption = "New COVID-19 Cases this Week (per 100k)"

// Vertical offsets in pixels.
const (
	labelOffsetY  = 4
	captionStartY = 20
	captionStepY  = 20
)

var captionText = map[models.Field]string{
	models.FieldVaccinatedPerHundred: "People Vaccinated (per 100)",
	models.FieldVaccinated:           "People Vaccinated",
}

// CaptionText returns the caption shown for a field.
func CaptionText(f models.Field) string {
	return captionText[f]
}

// PointID returns the element id of the i-th record's point.
func PointID(i int) string {
	return fmt.Sprintf("state-%d", i)
}

// Compose computes the target attributes of every element for state s.
func Compose(s State) models.Scene {
	l := s.Layout
	scene := models.Scene{
		Width:      l.Width,
		Height:     l.Height,
		Margin:     l.Margin,
		PlotWidth:  l.PlotWidth(),
		PlotHeight: l.PlotHeight(),
		Field:      s.Field,
		XAxis: models.Axis{
			Orient:  "bottom",
			Length:  l.PlotWidth(),
			OffsetY: l.PlotHeight(),
			Ticks:   axisTicks(s.X, l.Ticks),
		},
		YAxis: models.Axis{
			Orient: "left",
			Length: l.PlotHeight(),
			Ticks:  axisTicks(s.Y, l.Ticks),
		},
		YCaption: YCaption,
	}

	scene.Points = make([]models.Point, len(s.Records))
	for i, r := range s.Records {
		cx := s.X.Apply(r.Value(s.Field))
		cy := s.Y.Apply(r.NewWeeklyCasesPer100k)
		scene.Points[i] = models.Point{
			ID:      PointID(i),
			CX:      cx,
			CY:      cy,
			R:       l.Radius,
			LabelX:  cx,
			LabelY:  cy + labelOffsetY,
			Label:   r.StateCode,
			Tooltip: Tooltip(s.Field, r),
		}
	}

	for i, f := range models.Fields() {
		scene.Captions = append(scene.Captions, models.Caption{
			Field:  f,
			Text:   CaptionText(f),
			Y:      float64(captionStartY + i*captionStepY),
			Active: f == s.Field,
		})
	}

	return scene
}

func axisTicks(s scale.Linear, count int) []models.Tick {
	values := s.Ticks(count)
	format := s.TickFormat(count)
	ticks := make([]models.Tick, len(values))
	for i, v := range values {
		ticks[i] = models.Tick{Value: v, Pos: s.Apply(v), Label: format(v)}
	}
	return ticks
}

// Diff pairs the old and new x positions of circles, labels and x axis ticks
// for the update paint from prev to next. Vertical positions, radii and the
// y axis never move, so they are not part of a transition.
func Diff(prev, next State) models.Transition {
	tr := models.Transition{Duration: next.Layout.Duration}

	for i, r := range next.Records {
		id := PointID(i)
		from := prev.X.Apply(r.Value(prev.Field))
		to := next.X.Apply(r.Value(next.Field))
		tr.Circles = append(tr.Circles, models.Move{ID: id, From: from, To: to})
		tr.Labels = append(tr.Labels, models.Move{ID: id, From: from, To: to})
	}

	count := next.Layout.Ticks
	entering := axisTicks(next.X, count)
	kept := make(map[float64]bool, len(entering))
	for _, t := range entering {
		kept[t.Value] = true
		tr.Ticks = append(tr.Ticks, models.TickMove{Tick: t, From: prev.X.Apply(t.Value)})
	}
	for _, t := range axisTicks(prev.X, count) {
		if kept[t.Value] {
			continue
		}
		exit := models.Tick{Value: t.Value, Pos: next.X.Apply(t.Value), Label: t.Label}
		tr.Ticks = append(tr.Ticks, models.TickMove{Tick: exit, From: t.Pos, Exit: true})
	}

	return tr
}
