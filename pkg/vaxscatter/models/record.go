// Package models defines data structures for the vaccination scatter chart.
package models

import (
	"errors"
	"fmt"
)

// ErrUnknownField indicates a field name that cannot be plotted on the x axis.
var ErrUnknownField = errors.New("unknown axis field")

// Field names a numeric StateRecord column that can drive the x axis.
type Field string

const (
	// FieldVaccinatedPerHundred is the share of the population fully vaccinated.
	FieldVaccinatedPerHundred Field = "people_fully_vaccinated_per_hundred"
	// FieldVaccinated is the absolute count of fully vaccinated people.
	FieldVaccinated Field = "people_fully_vaccinated"
)

// Column names as they appear in the CSV header.
const (
	ColumnState         = "state"
	ColumnStateCode     = "state_code"
	ColumnCasesPer100k  = "new_weekly_cases_per_100k"
	ColumnVaxPerHundred = string(FieldVaccinatedPerHundred)
	ColumnVaxTotal      = string(FieldVaccinated)
)

// RequiredColumns lists every header the loader looks up.
var RequiredColumns = []string{
	ColumnState,
	ColumnStateCode,
	ColumnVaxPerHundred,
	ColumnVaxTotal,
	ColumnCasesPer100k,
}

// DefaultField is the x axis field selected when a chart is first built.
const DefaultField = FieldVaccinatedPerHundred

// Fields returns the selectable x axis fields in caption order.
func Fields() []Field {
	return []Field{FieldVaccinatedPerHundred, FieldVaccinated}
}

// ParseField validates a field name coming from a caption or a flag.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldVaccinatedPerHundred, FieldVaccinated:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// StateRecord is one row of the state statistics file.
type StateRecord struct {
	// State is the display name (e.g., "Alabama").
	State string `json:"state"`
	// StateCode is the two-letter postal code.
	StateCode string `json:"state_code"`
	// PeopleFullyVaccinatedPerHundred is expected in [0, 100]; NaN when malformed.
	PeopleFullyVaccinatedPerHundred float64 `json:"people_fully_vaccinated_per_hundred"`
	// PeopleFullyVaccinated is a head count; NaN when malformed.
	PeopleFullyVaccinated float64 `json:"people_fully_vaccinated"`
	// NewWeeklyCasesPer100k is the weekly case rate; NaN when malformed.
	NewWeeklyCasesPer100k float64 `json:"new_weekly_cases_per_100k"`
}

// Value returns the record's value for an x axis field.
func (r StateRecord) Value(f Field) float64 {
	if f == FieldVaccinated {
		return r.PeopleFullyVaccinated
	}
	return r.PeopleFullyVaccinatedPerHundred
}
