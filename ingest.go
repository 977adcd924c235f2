package xlsplit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/structure"
	"github.com/xuri/excelize/v2"
)

// Grid is one worksheet materialized as ordered rows of canonical
// text cells. Rows may have differing lengths; short rows stand for
// empty trailing cells.
type Grid [][]string

type sourceFormat int

const (
	formatXLSX sourceFormat = iota // zip-packaged OOXML
	formatXLS                      // legacy OLE2 binary
)

var (
	zipMagic  = []byte{0x50, 0x4b, 0x03, 0x04}
	ole2Magic = []byte{0xd0, 0xcf, 0x11, 0xe0, 0xa1, 0xb1, 0x1a, 0xe1}
)

// sniffFormat detects the container format from the file's magic
// bytes, falling back to the extension when the header is unreadable.
func sniffFormat(path string) sourceFormat {
	f, err := os.Open(path)
	if err == nil {
		var magic [8]byte
		n, _ := f.Read(magic[:])
		f.Close()
		if n >= len(zipMagic) && bytes.Equal(magic[:len(zipMagic)], zipMagic) {
			return formatXLSX
		}
		if n >= len(ole2Magic) && bytes.Equal(magic[:len(ole2Magic)], ole2Magic) {
			return formatXLS
		}
	}
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		return formatXLS
	}
	return formatXLSX
}

// readSheet opens the source workbook, auto-detecting legacy binary
// and zip-packaged formats, and materializes one worksheet as a Grid
// of normalized text. An empty sheetName selects the first sheet. The
// returned name is the display name of the sheet that was read.
func readSheet(path, sheetName string) (Grid, string, error) {
	if sniffFormat(path) == formatXLS {
		return readXLSSheet(path, sheetName)
	}
	return readXLSXSheet(path, sheetName)
}

func readXLSXSheet(path, sheetName string) (Grid, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %v", ErrSourceOpen, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, "", fmt.Errorf("%w: workbook %q has no sheets", ErrNoSheet, path)
	}
	name := sheets[0]
	if sheetName != "" {
		idx, err := f.GetSheetIndex(sheetName)
		if err != nil || idx < 0 {
			return nil, "", fmt.Errorf("%w: no sheet %q in %q", ErrNoSheet, sheetName, path)
		}
		name = sheetName
	}

	raw, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %v", ErrSheetRead, name, err)
	}

	grid := make(Grid, len(raw))
	for r, cells := range raw {
		row := make([]string, len(cells))
		for c, rawVal := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, "", fmt.Errorf("%w %q: %v", ErrSheetRead, name, err)
			}
			row[c] = Normalize(xlsxCellValue(f, name, cell, rawVal))
		}
		grid[r] = row
	}
	return grid, name, nil
}

// xlsxCellValue lifts one raw xlsx cell into a typed Value using the
// cell's declared type. Numeric cells carry no type attribute, so both
// CellTypeNumber and CellTypeUnset are parsed as numbers, with
// date-styled numbers promoted to date serials.
func xlsxCellValue(f *excelize.File, sheet, cell, raw string) Value {
	if raw == "" {
		return EmptyValue()
	}
	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return TextValue(raw)
	}
	switch cellType {
	case excelize.CellTypeBool:
		return BoolValue(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeError:
		return ErrorValue(raw)
	case excelize.CellTypeDate:
		return DateTextValue(raw)
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TextValue(raw)
		}
		if isDateStyled(f, sheet, cell) {
			return DateTimeValue(n)
		}
		return FloatValue(n)
	default:
		return TextValue(raw)
	}
}

// Built-in number formats that render as dates or times.
var builtInDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true, 19: true,
	20: true, 21: true, 22: true, 27: true, 28: true, 29: true,
	30: true, 31: true, 32: true, 33: true, 34: true, 35: true,
	36: true, 45: true, 46: true, 47: true, 50: true, 51: true,
	52: true, 53: true, 54: true, 55: true, 56: true, 57: true, 58: true,
}

func isDateStyled(f *excelize.File, sheet, cell string) bool {
	styleID, err := f.GetCellStyle(sheet, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if builtInDateFormats[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return customFormatIsDate(*style.CustomNumFmt)
	}
	return false
}

// customFormatIsDate reports whether a custom number format contains
// date/time tokens outside quoted literals and bracketed sections.
func customFormatIsDate(format string) bool {
	inQuote := false
	inBracket := false
	for _, ch := range format {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		case ch == 'y' || ch == 'Y' || ch == 'd' || ch == 'D' || ch == 'h' || ch == 'H' || ch == 'm' || ch == 'M' || ch == 's' || ch == 'S':
			return true
		}
	}
	return false
}

func readXLSSheet(path, sheetName string) (Grid, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %v", ErrSourceOpen, path, err)
	}
	defer f.Close()

	wb, err := xls.OpenReader(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %v", ErrSourceOpen, path, err)
	}
	if wb.GetNumberSheets() == 0 {
		return nil, "", fmt.Errorf("%w: workbook %q has no sheets", ErrNoSheet, path)
	}

	idx := 0
	if sheetName != "" {
		idx = -1
		for i := 0; i < wb.GetNumberSheets(); i++ {
			sh, err := wb.GetSheet(i)
			if err != nil || sh == nil {
				continue
			}
			if sh.GetName() == sheetName {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, "", fmt.Errorf("%w: no sheet %q in %q", ErrNoSheet, sheetName, path)
		}
	}

	sh, err := wb.GetSheet(idx)
	if err != nil || sh == nil {
		return nil, "", fmt.Errorf("%w: sheet %d of %q: %v", ErrSheetRead, idx, path, err)
	}

	var grid Grid
	for _, r := range sh.GetRows() {
		cols := r.GetCols()
		row := make([]string, len(cols))
		for c, cd := range cols {
			row[c] = Normalize(xlsCellValue(cd))
		}
		grid = append(grid, row)
	}
	return grid, sh.GetName(), nil
}

// xlsCellValue lifts one legacy-binary cell into a typed Value. The
// BIFF reader renders most cells as strings already; numeric accessors
// cover cells without a string form.
func xlsCellValue(cd structure.CellData) Value {
	if s := cd.GetString(); s != "" {
		return TextValue(s)
	}
	if f := cd.GetFloat64(); f != 0 {
		return FloatValue(f)
	}
	if i := cd.GetInt64(); i != 0 {
		return IntValue(i)
	}
	return EmptyValue()
}
