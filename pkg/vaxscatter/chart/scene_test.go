package chart

import (
	"strings"
	"testing"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

func activeCount(scene models.Scene) int {
	n := 0
	for _, c := range scene.Captions {
		if c.Active {
			n++
		}
	}
	return n
}

func TestComposeInitialPaint(t *testing.T) {
	scene := Compose(NewState(twoStates(), testLayout()))

	if len(scene.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(scene.Points))
	}

	a := scene.Points[0]
	// x: (10-8)/(24-8)*820 = 102.5, y: 400 - 5/15*400
	if !near(a.CX, 102.5) {
		t.Errorf("CX = %v, expected 102.5", a.CX)
	}
	if !near(a.CY, 400-400.0/3) {
		t.Errorf("CY = %v, expected %v", a.CY, 400-400.0/3)
	}
	if a.R != 18 {
		t.Errorf("R = %v, expected 18", a.R)
	}
	if a.LabelX != a.CX || !near(a.LabelY, a.CY+4) {
		t.Errorf("Label at (%v, %v), expected (%v, %v)", a.LabelX, a.LabelY, a.CX, a.CY+4)
	}
	if a.Label != "SA" {
		t.Errorf("Label = %q, expected 'SA'", a.Label)
	}

	if scene.XAxis.OffsetY != 400 || scene.XAxis.Orient != "bottom" {
		t.Errorf("Unexpected x axis: %+v", scene.XAxis)
	}
	if len(scene.XAxis.Ticks) == 0 || scene.XAxis.Ticks[0].Label != "8" {
		t.Errorf("Unexpected x ticks: %+v", scene.XAxis.Ticks)
	}
	if scene.YCaption != YCaption {
		t.Errorf("YCaption = %q", scene.YCaption)
	}
}

func TestComposeCaptions(t *testing.T) {
	s := NewState(twoStates(), testLayout())

	for _, field := range []models.Field{models.FieldVaccinated, models.FieldVaccinatedPerHundred, models.FieldVaccinatedPerHundred} {
		s, _, _ = Select(s, field)
		scene := Compose(s)

		if n := activeCount(scene); n != 1 {
			t.Fatalf("Expected exactly one active caption, got %d", n)
		}
		active, _ := scene.ActiveCaption()
		if active.Field != s.Field {
			t.Errorf("Active caption %q does not match field %q", active.Field, s.Field)
		}
	}

	scene := Compose(s)
	if scene.Captions[0].Text != "People Vaccinated (per 100)" || scene.Captions[0].Y != 20 {
		t.Errorf("Unexpected first caption: %+v", scene.Captions[0])
	}
	if scene.Captions[1].Text != "People Vaccinated" || scene.Captions[1].Y != 40 {
		t.Errorf("Unexpected second caption: %+v", scene.Captions[1])
	}
	if scene.Captions[1].Class() != "inactive" {
		t.Errorf("Expected inactive class, got %q", scene.Captions[1].Class())
	}
}

func TestSwitchMovesOnlyHorizontally(t *testing.T) {
	prev := NewState(twoStates(), testLayout())
	next, _, _ := Select(prev, models.FieldVaccinated)

	before := Compose(prev).Points[0]
	after := Compose(next).Points[0]

	// Both domains scale the same relative positions, so compare through the scales
	if !near(after.CX, next.X.Apply(100)) {
		t.Errorf("CX = %v, expected %v", after.CX, next.X.Apply(100))
	}
	if after.CY != before.CY {
		t.Errorf("CY changed from %v to %v", before.CY, after.CY)
	}
	if after.R != before.R {
		t.Errorf("R changed from %v to %v", before.R, after.R)
	}
	if !strings.Contains(after.Tooltip, "People Fully Vaccinated: 100") {
		t.Errorf("Tooltip not rebuilt: %q", after.Tooltip)
	}
}

func TestDiff(t *testing.T) {
	records := []models.StateRecord{
		{State: "State A", StateCode: "SA", PeopleFullyVaccinatedPerHundred: 10, PeopleFullyVaccinated: 300, NewWeeklyCasesPer100k: 5},
		{State: "State B", StateCode: "SB", PeopleFullyVaccinatedPerHundred: 20, PeopleFullyVaccinated: 200, NewWeeklyCasesPer100k: 15},
	}
	prev := NewState(records, testLayout())
	next, _, _ := Select(prev, models.FieldVaccinated)

	tr := Diff(prev, next)
	if tr.Duration != 1 {
		t.Errorf("Duration = %v, expected 1", tr.Duration)
	}
	if len(tr.Circles) != 2 || len(tr.Labels) != 2 {
		t.Fatalf("Expected 2 circle and 2 label moves, got %d and %d", len(tr.Circles), len(tr.Labels))
	}

	m := tr.Circles[0]
	if m.ID != "state-0" {
		t.Errorf("ID = %q, expected 'state-0'", m.ID)
	}
	if !near(m.From, prev.X.Apply(10)) || !near(m.To, next.X.Apply(300)) {
		t.Errorf("Move = %+v, expected %v -> %v", m, prev.X.Apply(10), next.X.Apply(300))
	}

	var entering, exiting int
	for _, tm := range tr.Ticks {
		if tm.Exit {
			exiting++
			if !near(tm.Tick.Pos, next.X.Apply(tm.Tick.Value)) {
				t.Errorf("Exiting tick %v ends at %v", tm.Tick.Value, tm.Tick.Pos)
			}
			continue
		}
		entering++
		if !near(tm.From, prev.X.Apply(tm.Tick.Value)) {
			t.Errorf("Entering tick %v starts at %v", tm.Tick.Value, tm.From)
		}
	}
	if entering != len(Compose(next).XAxis.Ticks) {
		t.Errorf("Expected %d entering ticks, got %d", len(Compose(next).XAxis.Ticks), entering)
	}
	if exiting == 0 {
		t.Error("Expected old ticks to exit")
	}
}
