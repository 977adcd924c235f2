package xlsplit

import (
	"fmt"
	"strings"
)

// MergeRange is a rectangular merged-cell region in source-sheet
// coordinates. All indices are zero-based and inclusive, with
// StartRow <= EndRow and StartCol <= EndCol.
type MergeRange struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}

// String formats the range as an A1-style reference like "B2:C4".
func (m MergeRange) String() string {
	return cellName(m.StartRow, m.StartCol) + ":" + cellName(m.EndRow, m.EndCol)
}

func cellName(row, col int) string {
	return ColToName(col) + fmt.Sprintf("%d", row+1)
}

// parseRangeRef parses a cell-range reference like "B2:C4" into a
// MergeRange. A single endpoint ("B2") denotes a one-cell range.
// Endpoints are normalized so start <= end on both axes. Returns
// ok=false for references that do not decode; merge extraction drops
// those silently.
func parseRangeRef(ref string) (MergeRange, bool) {
	parts := strings.SplitN(strings.TrimSpace(ref), ":", 2)
	start := strings.TrimSpace(parts[0])
	end := start
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}

	startCol, startRow, err := parseCellName(start)
	if err != nil {
		return MergeRange{}, false
	}
	endCol, endRow, err := parseCellName(end)
	if err != nil {
		return MergeRange{}, false
	}

	if startRow > endRow {
		startRow, endRow = endRow, startRow
	}
	if startCol > endCol {
		startCol, endCol = endCol, startCol
	}
	return MergeRange{StartRow: startRow, EndRow: endRow, StartCol: startCol, EndCol: endCol}, true
}

// parseCellName parses "A1" into col=0, row=0. The name must be a run
// of column letters followed by a run of digits; anything else is an
// error.
func parseCellName(name string) (col, row int, err error) {
	if name == "" {
		return 0, 0, fmt.Errorf("empty cell name")
	}

	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return 0, 0, fmt.Errorf("invalid cell name: %q", name)
	}

	col, err = NameToCol(name[:i])
	if err != nil {
		return 0, 0, err
	}

	rowNum := 0
	for _, ch := range name[i:] {
		if ch < '0' || ch > '9' {
			return 0, 0, fmt.Errorf("invalid row in cell name: %q", name)
		}
		rowNum = rowNum*10 + int(ch-'0')
	}
	if rowNum < 1 {
		return 0, 0, fmt.Errorf("invalid row number in cell name: %q", name)
	}

	return col, rowNum - 1, nil // convert 1-based row to 0-based
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA"
func ColToName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	name = strings.ToUpper(name)
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	col := 0
	for _, ch := range name {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
		col = col*26 + int(ch-'A') + 1
	}
	return col - 1, nil
}
