package scale

import (
	"math"
	"testing"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

func twoStates() []models.StateRecord {
	return []models.StateRecord{
		{State: "State A", StateCode: "SA", PeopleFullyVaccinatedPerHundred: 10, PeopleFullyVaccinated: 100, NewWeeklyCasesPer100k: 5},
		{State: "State B", StateCode: "SB", PeopleFullyVaccinatedPerHundred: 20, PeopleFullyVaccinated: 200, NewWeeklyCasesPer100k: 15},
	}
}

func TestXDomain(t *testing.T) {
	records := twoStates()

	tests := []struct {
		field    models.Field
		expected [2]float64
	}{
		{models.FieldVaccinatedPerHundred, [2]float64{8, 24}},
		{models.FieldVaccinated, [2]float64{80, 240}},
	}

	for _, tt := range tests {
		s := X(records, tt.field, 820)
		if math.Abs(s.Domain[0]-tt.expected[0]) > 1e-9 || math.Abs(s.Domain[1]-tt.expected[1]) > 1e-9 {
			t.Errorf("X(%s).Domain = %v, expected %v", tt.field, s.Domain, tt.expected)
		}
		if s.Range != [2]float64{0, 820} {
			t.Errorf("X(%s).Range = %v, expected [0 820]", tt.field, s.Range)
		}
	}
}

func TestYDomain(t *testing.T) {
	s := Y(twoStates(), 400)

	if s.Domain != [2]float64{0, 15} {
		t.Errorf("Y.Domain = %v, expected [0 15]", s.Domain)
	}
	if s.Range != [2]float64{400, 0} {
		t.Errorf("Y.Range = %v, expected [400 0]", s.Range)
	}
}

func TestExtentSkipsNaN(t *testing.T) {
	records := twoStates()
	records = append(records, models.StateRecord{State: "Bad", PeopleFullyVaccinatedPerHundred: math.NaN(), NewWeeklyCasesPer100k: math.NaN()})

	lo, hi, ok := Extent(records, func(r models.StateRecord) float64 { return r.PeopleFullyVaccinatedPerHundred })
	if !ok || lo != 10 || hi != 20 {
		t.Errorf("Extent = (%v, %v, %v), expected (10, 20, true)", lo, hi, ok)
	}

	if s := Y(records, 400); s.Domain != [2]float64{0, 15} {
		t.Errorf("Y.Domain = %v, expected [0 15]", s.Domain)
	}
}

func TestDegenerateDomains(t *testing.T) {
	zeros := []models.StateRecord{
		{State: "Z1"},
		{State: "Z2"},
	}
	if s := X(zeros, models.FieldVaccinatedPerHundred, 100); s.Domain != [2]float64{0, 1} {
		t.Errorf("X over zeros = %v, expected [0 1]", s.Domain)
	}
	if s := Y(zeros, 100); s.Domain != [2]float64{0, 1} {
		t.Errorf("Y over zeros = %v, expected [0 1]", s.Domain)
	}

	allNaN := []models.StateRecord{{PeopleFullyVaccinated: math.NaN(), NewWeeklyCasesPer100k: math.NaN()}}
	if s := X(allNaN, models.FieldVaccinated, 100); s.Domain != [2]float64{0, 1} {
		t.Errorf("X over NaN = %v, expected [0 1]", s.Domain)
	}

	same := []models.StateRecord{{PeopleFullyVaccinatedPerHundred: 50}, {PeopleFullyVaccinatedPerHundred: 50}}
	s := X(same, models.FieldVaccinatedPerHundred, 100)
	if s.Domain[0] >= s.Domain[1] {
		t.Errorf("X over equal values = %v, expected a positive span", s.Domain)
	}
}
