package xlsplit

import "errors"

// Sentinel errors returned by Split and its stages. Callers match them
// with errors.Is; the wrapped message carries the source path, sheet
// name, or container entry involved.
var (
	// ErrInvalidParameter reports a zero or inverted chunkSize/headerRows.
	ErrInvalidParameter = errors.New("invalid split parameter")

	// ErrSourceOpen reports a source file that cannot be opened or parsed.
	ErrSourceOpen = errors.New("cannot open source workbook")

	// ErrNoSheet reports a workbook without any worksheet, or a requested
	// sheet name that does not exist.
	ErrNoSheet = errors.New("worksheet not found")

	// ErrSheetRead reports a worksheet whose cell grid cannot be read.
	ErrSheetRead = errors.New("cannot read worksheet")

	// ErrRowCountBelowHeader reports a sheet with fewer rows than the
	// requested header rows.
	ErrRowCountBelowHeader = errors.New("worksheet has fewer rows than header rows")

	// ErrContainerEntryMissing reports a missing part inside the zip container.
	ErrContainerEntryMissing = errors.New("workbook container entry missing")

	// ErrMalformedContainer reports container XML that cannot be parsed at all.
	ErrMalformedContainer = errors.New("malformed workbook container")

	// ErrRelationshipNotFound reports a sheet whose relationship chain
	// (name -> r:id -> part path) cannot be resolved.
	ErrRelationshipNotFound = errors.New("sheet relationship not found")

	// ErrWrite reports a failure writing an output chunk file.
	ErrWrite = errors.New("cannot write output workbook")
)
