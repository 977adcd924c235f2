package xlsplit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- column codec ---

func TestColumnCodec_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		col  int
	}{
		{"A", 0},
		{"Z", 25},
		{"AA", 26},
		{"AZ", 51},
		{"BA", 52},
	}
	for _, tc := range cases {
		got, err := NameToCol(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.col, got, "NameToCol(%s)", tc.name)
		assert.Equal(t, tc.name, ColToName(tc.col), "ColToName(%d)", tc.col)
	}
}

func TestNameToCol_Lowercase(t *testing.T) {
	col, err := NameToCol("aa")
	require.NoError(t, err)
	assert.Equal(t, 26, col)
}

func TestNameToCol_Invalid(t *testing.T) {
	_, err := NameToCol("")
	assert.Error(t, err)
	_, err = NameToCol("A1")
	assert.Error(t, err)
}

// --- cell names ---

func TestParseCellName_Simple(t *testing.T) {
	col, row, err := parseCellName("B2")
	require.NoError(t, err)
	assert.Equal(t, 1, col)
	assert.Equal(t, 1, row)
}

func TestParseCellName_MultiLetter(t *testing.T) {
	col, row, err := parseCellName("AZ10")
	require.NoError(t, err)
	assert.Equal(t, 51, col)
	assert.Equal(t, 9, row)
}

func TestParseCellName_Invalid(t *testing.T) {
	for _, bad := range []string{"", "A", "123", "1A", "A0", "A1B"} {
		_, _, err := parseCellName(bad)
		assert.Error(t, err, "parseCellName(%q)", bad)
	}
}

// --- range refs ---

func TestParseRangeRef_TwoEndpoints(t *testing.T) {
	r, ok := parseRangeRef("B2:C4")
	require.True(t, ok)
	assert.Equal(t, MergeRange{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 2}, r)
}

func TestParseRangeRef_SingleEndpoint(t *testing.T) {
	r, ok := parseRangeRef("B2")
	require.True(t, ok)
	assert.Equal(t, MergeRange{StartRow: 1, EndRow: 1, StartCol: 1, EndCol: 1}, r)
}

func TestParseRangeRef_InvertedEndpoints(t *testing.T) {
	r, ok := parseRangeRef("C4:B2")
	require.True(t, ok)
	assert.Equal(t, MergeRange{StartRow: 1, EndRow: 3, StartCol: 1, EndCol: 2}, r)
}

func TestParseRangeRef_Whitespace(t *testing.T) {
	r, ok := parseRangeRef(" B2 : C4 ")
	require.True(t, ok)
	assert.Equal(t, "B2:C4", r.String())
}

func TestParseRangeRef_Invalid(t *testing.T) {
	for _, bad := range []string{"", ":", "B2:", "2B:C4", "B2:xyz", "B"} {
		_, ok := parseRangeRef(bad)
		assert.False(t, ok, "parseRangeRef(%q)", bad)
	}
}
