package xlsplit

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// writeChunk serializes one chunk: header rows first, data rows
// immediately after, then the remapped merges with their anchor text.
// A partially written destination is not cleaned up on failure.
func writeChunk(destination string, header, data Grid, merges []ChunkMerge) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rowIdx := 1 // excelize rows are 1-based
	for _, rows := range []Grid{header, data} {
		for _, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx)
			if err != nil {
				return fmt.Errorf("%w %q: %v", ErrWrite, destination, err)
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("%w %q: row %d: %v", ErrWrite, destination, rowIdx, err)
			}
			rowIdx++
		}
	}

	for _, m := range merges {
		topLeft, err := excelize.CoordinatesToCellName(m.StartCol+1, m.StartRow+1)
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrWrite, destination, err)
		}
		bottomRight, err := excelize.CoordinatesToCellName(m.EndCol+1, m.EndRow+1)
		if err != nil {
			return fmt.Errorf("%w %q: %v", ErrWrite, destination, err)
		}
		if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("%w %q: merge %s:%s: %v", ErrWrite, destination, topLeft, bottomRight, err)
		}
		if err := f.SetCellStr(sheet, topLeft, m.Anchor); err != nil {
			return fmt.Errorf("%w %q: anchor %s: %v", ErrWrite, destination, topLeft, err)
		}
	}

	if err := f.SaveAs(destination); err != nil {
		return fmt.Errorf("%w %q: %v", ErrWrite, destination, err)
	}
	return nil
}
