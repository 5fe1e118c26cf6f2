package main

import (
	"math"
	"strings"
	"testing"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

func TestStats(t *testing.T) {
	records := []models.StateRecord{
		{State: "State A", PeopleFullyVaccinatedPerHundred: 10, PeopleFullyVaccinated: 100, NewWeeklyCasesPer100k: 5},
		{State: "State B", PeopleFullyVaccinatedPerHundred: math.NaN(), PeopleFullyVaccinated: 200, NewWeeklyCasesPer100k: 15},
		{State: "State C", PeopleFullyVaccinatedPerHundred: 30, PeopleFullyVaccinated: 150, NewWeeklyCasesPer100k: math.NaN()},
	}

	result := stats(records)
	if len(result) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(result))
	}

	tests := []struct {
		name     string
		min, max float64
		missing  int
	}{
		{models.ColumnVaxPerHundred, 10, 30, 1},
		{models.ColumnVaxTotal, 100, 200, 0},
		{models.ColumnCasesPer100k, 5, 15, 1},
	}

	for i, tt := range tests {
		s := result[i]
		if s.Name != tt.name || s.Min != tt.min || s.Max != tt.max || s.Missing != tt.missing {
			t.Errorf("stats[%d] = %+v, expected %+v", i, s, tt)
		}
	}
}

func TestSummaryTable(t *testing.T) {
	records := []models.StateRecord{
		{State: "State A", PeopleFullyVaccinatedPerHundred: math.NaN(), PeopleFullyVaccinated: math.NaN(), NewWeeklyCasesPer100k: 5},
	}

	out := summaryTable("state_stats.csv", records)
	for _, want := range []string{"1 states from state_stats.csv", models.ColumnCasesPer100k, "-"} {
		if !strings.Contains(out, want) {
			t.Errorf("Summary missing %q:\n%s", want, out)
		}
	}
}
