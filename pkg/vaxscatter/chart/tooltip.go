package chart

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

const casesLabel = "New weekly cases:"

// Tooltip returns the hover text for a record under the chosen field.
func Tooltip(field models.Field, r models.StateRecord) string {
	label := "People Fully Vaccinated:"
	if field == models.FieldVaccinatedPerHundred {
		label = "% fully vaccinated:"
	}
	return fmt.Sprintf("%s\n%s  %s\n%s  %s",
		r.State,
		casesLabel, formatNumber(r.NewWeeklyCasesPer100k),
		label, formatNumber(r.Value(field)))
}

// formatNumber prints the shortest representation, "NaN" included.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
