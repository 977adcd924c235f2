package xlsplit

import "github.com/xuri/excelize/v2"

// ChunkMerge is a MergeRange translated into one chunk's local
// coordinate space, carrying the anchor text of the original range's
// top-left cell.
type ChunkMerge struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
	Anchor   string
}

// remapMerges filters the source merge ranges down to those wholly
// contained in the chunk described by plan and translates them into
// chunk-local rows. A merge straddling a chunk boundary cannot be
// represented faithfully in either file, so it appears in neither.
// Columns beyond the writer's addressable width are dropped as well.
func remapMerges(merges []MergeRange, headerRows int, plan ChunkPlan, header, data Grid) []ChunkMerge {
	var result []ChunkMerge
	for _, m := range merges {
		if !rowInChunk(m.StartRow, headerRows, plan) || !rowInChunk(m.EndRow, headerRows, plan) {
			continue
		}
		if m.EndCol >= excelize.MaxColumns {
			continue
		}
		result = append(result, ChunkMerge{
			StartRow: mapRowToChunk(m.StartRow, headerRows, plan.DataStart),
			EndRow:   mapRowToChunk(m.EndRow, headerRows, plan.DataStart),
			StartCol: m.StartCol,
			EndCol:   m.EndCol,
			Anchor:   anchorText(header, data, headerRows, m.StartRow, m.StartCol),
		})
	}
	return result
}

// rowInChunk reports whether a source row lands in the chunk: header
// rows always do, data rows only when their data index falls inside
// [DataStart, DataEnd).
func rowInChunk(row, headerRows int, plan ChunkPlan) bool {
	if row < headerRows {
		return true
	}
	dataIdx := row - headerRows
	return dataIdx >= plan.DataStart && dataIdx < plan.DataEnd
}

// mapRowToChunk translates a source row into the chunk's local row:
// header rows map 1:1, data rows shift down by the chunk's data start.
func mapRowToChunk(row, headerRows, dataStart int) int {
	if row < headerRows {
		return row
	}
	return headerRows + (row - headerRows - dataStart)
}

// anchorText reads the display value at a source coordinate from
// whichever of the header/data grids contains it, defaulting to the
// empty string when out of bounds.
func anchorText(header, data Grid, headerRows, row, col int) string {
	grid := header
	idx := row
	if row >= headerRows {
		grid = data
		idx = row - headerRows
	}
	if idx < 0 || idx >= len(grid) {
		return ""
	}
	if col < 0 || col >= len(grid[idx]) {
		return ""
	}
	return grid[idx][col]
}
