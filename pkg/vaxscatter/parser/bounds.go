package parser

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 || rowIdx < minRow {
				minRow = rowIdx
			}
			if maxRow < 0 || rowIdx > maxRow {
				maxRow = rowIdx
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// cropRows returns the rows inside the bounding box, with every row padded
// or cut to the box width.
func cropRows(rows [][]string, minRow, maxRow, minCol, maxCol int) [][]string {
	if minRow < 0 {
		return nil
	}
	width := maxCol - minCol + 1
	out := make([][]string, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		cells := make([]string, width)
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			cells[colIdx-minCol] = row[colIdx]
		}
		out = append(out, cells)
	}
	return out
}
