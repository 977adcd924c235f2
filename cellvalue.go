package xlsplit

import (
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Kind discriminates the typed cell values a reader can surface.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindBool
	KindInt
	KindFloat
	KindDateTime // Excel serial number carrying a date/time
	KindDateText // date or duration already expressed as text (ISO 8601)
	KindError    // cell error such as #DIV/0!
)

// Value is one raw typed cell as supplied by the workbook reader,
// before normalization into display text.
type Value struct {
	Kind   Kind
	Text   string  // KindText, KindDateText, KindError
	Float  float64 // KindFloat
	Int    int64   // KindInt
	Bool   bool    // KindBool
	Serial float64 // KindDateTime
}

// EmptyValue returns the empty cell value.
func EmptyValue() Value { return Value{} }

// TextValue returns a text cell value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// BoolValue returns a boolean cell value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// IntValue returns an integer cell value.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue returns a floating-point cell value.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// DateTimeValue returns a cell value holding an Excel date serial.
func DateTimeValue(serial float64) Value { return Value{Kind: KindDateTime, Serial: serial} }

// DateTextValue returns a date/duration cell already expressed as text.
func DateTextValue(s string) Value { return Value{Kind: KindDateText, Text: s} }

// ErrorValue returns a cell error value such as "#N/A".
func ErrorValue(code string) Value { return Value{Kind: KindError, Text: code} }

// Normalize converts a raw typed cell value into canonical display
// text. It never fails: every Kind maps to some string.
//
// Numbers render without trailing zeros ("1.50" -> "1.5", "2.0" -> "2");
// date serials render as "YYYY-MM-DD HH:MM:SS", falling back to the raw
// serial when calendar conversion fails.
func Normalize(v Value) string {
	switch v.Kind {
	case KindEmpty:
		return ""
	case KindText, KindDateText:
		return v.Text
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return formatFloat(v.Float)
	case KindDateTime:
		t, err := excelize.ExcelDateToTime(v.Serial, false)
		if err != nil {
			return strconv.FormatFloat(v.Serial, 'f', -1, 64)
		}
		return t.Format("2006-01-02 15:04:05")
	case KindError:
		return "ERROR: " + v.Text
	}
	return ""
}

// formatFloat renders integral values without decimals and everything
// else with the shortest representation that round-trips.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
