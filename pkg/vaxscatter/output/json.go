// Package output serializes loaded records.
package output

import (
	"encoding/json"
	"math"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

// recordView mirrors models.StateRecord with nullable numbers, since JSON
// has no NaN.
type recordView struct {
	State                           string   `json:"state"`
	StateCode                       string   `json:"state_code"`
	PeopleFullyVaccinatedPerHundred *float64 `json:"people_fully_vaccinated_per_hundred"`
	PeopleFullyVaccinated           *float64 `json:"people_fully_vaccinated"`
	NewWeeklyCasesPer100k           *float64 `json:"new_weekly_cases_per_100k"`
}

// ToJSON serializes records. Values that are NaN or infinite are written
// as null.
func ToJSON(records []models.StateRecord, pretty bool) ([]byte, error) {
	views := make([]recordView, 0, len(records))
	for _, r := range records {
		views = append(views, recordView{
			State:                           r.State,
			StateCode:                       r.StateCode,
			PeopleFullyVaccinatedPerHundred: nullable(r.PeopleFullyVaccinatedPerHundred),
			PeopleFullyVaccinated:           nullable(r.PeopleFullyVaccinated),
			NewWeeklyCasesPer100k:           nullable(r.NewWeeklyCasesPer100k),
		})
	}

	if pretty {
		return json.MarshalIndent(views, "", "  ")
	}
	return json.Marshal(views)
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
