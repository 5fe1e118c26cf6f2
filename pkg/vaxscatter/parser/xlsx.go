package parser

import (
	"fmt"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX decodes state records from the first sheet of a workbook.
// The header row is the first row of the sheet's non-empty bounding box,
// so tables that do not start at A1 are found as well. Cells are read as
// stored, ignoring number formats such as thousands separators.
func ReadXLSX(f *excelize.File) ([]models.StateRecord, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	table := cropRows(rows, minRow, maxRow, minCol, maxCol)
	if len(table) == 0 {
		return nil, ErrNoRecords
	}

	return decodeRows(table[0], table[1:])
}
