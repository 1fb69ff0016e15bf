package usableweights

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Defaults()))

	got, err := ReadXLSX(&buf)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func sheetBytes(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	return &buf
}

func TestReadXLSX_Errors(t *testing.T) {
	header := []interface{}{"product_form", "product_modifier", "grams"}

	tests := []struct {
		name    string
		rows    [][]interface{}
		wantMsg string
	}{
		{
			name:    "bad header",
			rows:    [][]interface{}{{"form", "modifier", "weight"}},
			wantMsg: "header must be",
		},
		{
			name:    "bad number",
			rows:    [][]interface{}{header, {"Preroll", "Single", "half"}},
			wantMsg: "row 2",
		},
		{
			name:    "negative weight",
			rows:    [][]interface{}{header, {"Preroll", "Single", 1}, {"Hash", "Packaged", -1}},
			wantMsg: "row 3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadXLSX(sheetBytes(t, tt.rows...))
			require.ErrorIs(t, err, ErrInvalidEntry)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadXLSX_CommaDecimalAndBlankRows(t *testing.T) {
	buf := sheetBytes(t,
		[]interface{}{"Product_Form", "Product_Modifier", "Grams"},
		[]interface{}{"Preroll", "Single", "0,5"},
		[]interface{}{"", "", ""},
		[]interface{}{" Hash ", "Packaged", 1},
	)
	got, err := ReadXLSX(buf)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{ProductForm: "Preroll", ProductModifier: "Single", Grams: 0.5},
		{ProductForm: "Hash", ProductModifier: "Packaged", Grams: 1},
	}, got)
}

func TestReadXLSX_NotAWorkbook(t *testing.T) {
	_, err := ReadXLSX(bytes.NewBufferString("definitely not a zip"))
	assert.ErrorIs(t, err, ErrInvalidEntry)
}
