package xlsplit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadSheet_TypedCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellStr(sheet, "A1", "name"))
	require.NoError(t, f.SetCellBool(sheet, "B1", true))
	require.NoError(t, f.SetCellValue(sheet, "C1", 2.0))
	require.NoError(t, f.SetCellValue(sheet, "D1", 1.5))
	require.NoError(t, f.SetCellValue(sheet, "E1", 3))

	path := filepath.Join(t.TempDir(), "typed.xlsx")
	require.NoError(t, f.SaveAs(path))

	grid, name, err := readSheet(path, "")
	require.NoError(t, err)
	assert.Equal(t, "Sheet1", name)
	require.Len(t, grid, 1)
	assert.Equal(t, []string{"name", "TRUE", "2", "1.5", "3"}, grid[0])
}

func TestReadSheet_DateStyledNumber(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	styleID, err := f.NewStyle(&excelize.Style{NumFmt: 22}) // m/d/yy h:mm
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue(sheet, "A1", 45000.5))
	require.NoError(t, f.SetCellStyle(sheet, "A1", "A1", styleID))
	require.NoError(t, f.SetCellValue(sheet, "B1", 45000.5)) // same number, no date style

	path := filepath.Join(t.TempDir(), "dates.xlsx")
	require.NoError(t, f.SaveAs(path))

	grid, _, err := readSheet(path, "")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, "2023-03-15 12:00:00", grid[0][0])
	assert.Equal(t, "45000.5", grid[0][1])
}

func TestReadSheet_GapCellsAreEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellStr(sheet, "A1", "x"))
	require.NoError(t, f.SetCellStr(sheet, "C1", "y"))

	path := filepath.Join(t.TempDir(), "gaps.xlsx")
	require.NoError(t, f.SaveAs(path))

	grid, _, err := readSheet(path, "")
	require.NoError(t, err)
	require.Len(t, grid, 1)
	assert.Equal(t, []string{"x", "", "y"}, grid[0])
}

func TestReadSheet_NamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetCellStr("Second", "A1", "second sheet"))

	path := filepath.Join(t.TempDir(), "multi.xlsx")
	require.NoError(t, f.SaveAs(path))

	grid, name, err := readSheet(path, "Second")
	require.NoError(t, err)
	assert.Equal(t, "Second", name)
	require.Len(t, grid, 1)
	assert.Equal(t, "second sheet", grid[0][0])

	_, _, err = readSheet(path, "Missing")
	assert.ErrorIs(t, err, ErrNoSheet)
}

func TestReadSheet_OpenFailure(t *testing.T) {
	_, _, err := readSheet(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.ErrorIs(t, err, ErrSourceOpen)
}

func TestReadSheet_GarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a spreadsheet"), 0o644))

	_, _, err := readSheet(path, "")
	assert.ErrorIs(t, err, ErrSourceOpen)
}

func TestSniffFormat_MagicBytes(t *testing.T) {
	dir := t.TempDir()

	zipPath := filepath.Join(dir, "file.bin")
	require.NoError(t, os.WriteFile(zipPath, zipMagic, 0o644))
	assert.Equal(t, formatXLSX, sniffFormat(zipPath))

	olePath := filepath.Join(dir, "file2.bin")
	require.NoError(t, os.WriteFile(olePath, ole2Magic, 0o644))
	assert.Equal(t, formatXLS, sniffFormat(olePath))
}

func TestSniffFormat_ExtensionFallback(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, formatXLS, sniffFormat(filepath.Join(dir, "missing.xls")))
	assert.Equal(t, formatXLSX, sniffFormat(filepath.Join(dir, "missing.xlsx")))
}
