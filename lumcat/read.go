package lumcat

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadCSV reads a reference matrix from CSV - the first record is the header
func ReadCSV(r io.Reader) (*Matrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return NewMatrix(nil, nil), nil
		}
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV rows: %w", err)
	}
	return NewMatrix(header, rows), nil
}

// ReadXLSX reads a reference matrix from a worksheet of an Excel workbook - the first row
// is the header
//
// if sheet is empty, the first worksheet is used
func ReadXLSX(r io.Reader, sheet string) (*Matrix, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no worksheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return NewMatrix(nil, nil), nil
	}
	return NewMatrix(rows[0], rows[1:]), nil
}
