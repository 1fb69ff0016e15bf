package usableweights

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

var sheetHeader = []string{"product_form", "product_modifier", "grams"}

// WriteXLSX выгружает таблицу в Excel: одна строка на пару форма/модификация.
func WriteXLSX(w io.Writer, entries []Entry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := make([]interface{}, len(sheetHeader))
	for i, h := range sheetHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.ProductForm, e.ProductModifier, e.Grams}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// ReadXLSX читает файл в формате WriteXLSX. Пустые строки пропускаются,
// ошибки указывают номер строки в файле.
func ReadXLSX(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrInvalidEntry, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrInvalidEntry)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	var out []Entry
	for i, row := range rows[1:] {
		line := i + 2
		if isBlank(row) {
			continue
		}
		if len(row) < len(sheetHeader) {
			return nil, fmt.Errorf("row %d: %w: expected %d columns", line, ErrInvalidEntry, len(sheetHeader))
		}
		grams, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(row[2]), ",", ".", 1), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: bad grams %q", line, ErrInvalidEntry, row[2])
		}
		e := Entry{
			ProductForm:     strings.TrimSpace(row[0]),
			ProductModifier: strings.TrimSpace(row[1]),
			Grams:           grams,
		}
		if err := validate(e); err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func checkHeader(row []string) error {
	if len(row) < len(sheetHeader) {
		return fmt.Errorf("%w: header must be %s", ErrInvalidEntry, strings.Join(sheetHeader, ", "))
	}
	for i, h := range sheetHeader {
		if strings.ToLower(strings.TrimSpace(row[i])) != h {
			return fmt.Errorf("%w: header must be %s", ErrInvalidEntry, strings.Join(sheetHeader, ", "))
		}
	}
	return nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
