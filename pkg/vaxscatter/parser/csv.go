package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
)

// ReadCSV decodes state records from CSV text with a header row.
// Rows keep file order; columns not named in models.RequiredColumns are ignored.
func ReadCSV(r io.Reader) ([]models.StateRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRecords
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}

	return decodeRows(headers, rows)
}

// decodeRows maps a header row and its data rows onto state records.
func decodeRows(headers []string, rows [][]string) ([]models.StateRecord, error) {
	headerMap := make(map[string]int, len(headers))
	for i, header := range headers {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(header, "\ufeff")))
		if _, dup := headerMap[key]; !dup {
			headerMap[key] = i
		}
	}

	idx := make(map[string]int, len(models.RequiredColumns))
	for _, name := range models.RequiredColumns {
		i, ok := headerMap[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		idx[name] = i
	}

	records := make([]models.StateRecord, 0, len(rows))
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		records = append(records, models.StateRecord{
			State:                           text(row, idx[models.ColumnState]),
			StateCode:                       text(row, idx[models.ColumnStateCode]),
			PeopleFullyVaccinatedPerHundred: number(row, idx[models.ColumnVaxPerHundred]),
			PeopleFullyVaccinated:           number(row, idx[models.ColumnVaxTotal]),
			NewWeeklyCasesPer100k:           number(row, idx[models.ColumnCasesPer100k]),
		})
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func text(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// number coerces a cell; a cell missing from a short row is NaN, not 0.
func number(row []string, i int) float64 {
	if i < len(row) {
		return ToNumber(row[i])
	}
	return math.NaN()
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
