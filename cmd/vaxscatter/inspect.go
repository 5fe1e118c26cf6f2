package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/scale"
)

var (
	colorAccent = lipgloss.Color("#89bdd3")
	colorMuted  = lipgloss.Color("#c9c9c9")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// columnStats summarizes one numeric column.
type columnStats struct {
	Name    string
	Min     float64
	Max     float64
	Missing int
}

func stats(records []models.StateRecord) []columnStats {
	columns := []struct {
		name  string
		value func(models.StateRecord) float64
	}{
		{models.ColumnVaxPerHundred, func(r models.StateRecord) float64 { return r.PeopleFullyVaccinatedPerHundred }},
		{models.ColumnVaxTotal, func(r models.StateRecord) float64 { return r.PeopleFullyVaccinated }},
		{models.ColumnCasesPer100k, func(r models.StateRecord) float64 { return r.NewWeeklyCasesPer100k }},
	}

	out := make([]columnStats, 0, len(columns))
	for _, c := range columns {
		lo, hi, ok := scale.Extent(records, c.value)
		if !ok {
			lo, hi = math.NaN(), math.NaN()
		}
		missing := 0
		for _, r := range records {
			if math.IsNaN(c.value(r)) {
				missing++
			}
		}
		out = append(out, columnStats{Name: c.name, Min: lo, Max: hi, Missing: missing})
	}
	return out
}

func summaryTable(source string, records []models.StateRecord) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("column", "min", "max", "missing").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, s := range stats(records) {
		t.Row(s.Name, formatStat(s.Min), formatStat(s.Max), strconv.Itoa(s.Missing))
	}

	title := titleStyle.Render(fmt.Sprintf("%d states from %s", len(records), source))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
