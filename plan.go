package xlsplit

import "fmt"

// ChunkPlan is the half-open slice [DataStart, DataEnd) of the sheet's
// data rows (rows after the header) covered by one output file. Index
// is 1-based and used for output naming.
type ChunkPlan struct {
	Index     int
	DataStart int
	DataEnd   int
}

// PlanChunks partitions totalRows rows into header+data chunks of at
// most chunkSize rows each. Data rows are consumed greedily in slices
// of chunkSize-headerRows; the final slice may be shorter. A sheet
// with no data rows still yields one plan with an empty slice, so the
// header alone is emitted as a single file.
func PlanChunks(totalRows, headerRows, chunkSize int) ([]ChunkPlan, error) {
	if err := validateParams(chunkSize, headerRows); err != nil {
		return nil, err
	}
	if totalRows < headerRows {
		return nil, fmt.Errorf("%w: %d rows, %d header rows requested", ErrRowCountBelowHeader, totalRows, headerRows)
	}

	dataRows := totalRows - headerRows
	if dataRows == 0 {
		return []ChunkPlan{{Index: 1}}, nil
	}

	capacity := chunkSize - headerRows
	var plans []ChunkPlan
	index := 1
	for start := 0; start < dataRows; index++ {
		end := start + capacity
		if end > dataRows {
			end = dataRows
		}
		plans = append(plans, ChunkPlan{Index: index, DataStart: start, DataEnd: end})
		start = end
	}
	return plans, nil
}

func validateParams(chunkSize, headerRows int) error {
	if chunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be greater than zero", ErrInvalidParameter)
	}
	if headerRows <= 0 {
		return fmt.Errorf("%w: header rows must be greater than zero", ErrInvalidParameter)
	}
	if chunkSize <= headerRows {
		return fmt.Errorf("%w: chunk size %d must exceed header rows %d", ErrInvalidParameter, chunkSize, headerRows)
	}
	return nil
}
