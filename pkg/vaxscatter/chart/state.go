// Package chart holds the scatter chart's state machine and computes the
// target attributes of every element for a paint.
package chart

import (
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/scale"
)

// Layout fixes the geometry of one chart instance.
type Layout struct {
	// Width and Height are the outer SVG dimensions in pixels.
	Width  int
	Height int
	Margin models.Margin
	// Radius is the circle radius.
	Radius float64
	// Ticks is the requested tick count per axis.
	Ticks int
	// Duration is the update animation length in seconds.
	Duration float64
}

// PlotWidth returns the width left for the plot area.
func (l Layout) PlotWidth() float64 {
	return float64(l.Width - l.Margin.Left - l.Margin.Right)
}

// PlotHeight returns the height left for the plot area.
func (l Layout) PlotHeight() float64 {
	return float64(l.Height - l.Margin.Top - l.Margin.Bottom)
}

// State is everything a paint depends on. It is a value: updates return a
// new State and never modify the records.
type State struct {
	Records []models.StateRecord
	// Field is the chosen x axis field.
	Field  models.Field
	Layout Layout
	X      scale.Linear
	// Y is computed once per State lineage and survives field switches.
	Y scale.Linear
}

// NewState builds the initial state with the default field selected.
func NewState(records []models.StateRecord, layout Layout) State {
	return State{
		Records: records,
		Field:   models.DefaultField,
		Layout:  layout,
		X:       scale.X(records, models.DefaultField, layout.PlotWidth()),
		Y:       scale.Y(records, layout.PlotHeight()),
	}
}

// Select switches the x axis to field. Selecting the current field is a
// no-op and reports changed == false; the returned state is then s itself.
func Select(s State, field models.Field) (next State, changed bool, err error) {
	if _, err := models.ParseField(string(field)); err != nil {
		return s, false, err
	}
	if field == s.Field {
		return s, false, nil
	}

	next = s
	next.Field = field
	next.X = scale.X(s.Records, field, s.Layout.PlotWidth())
	return next, true, nil
}
