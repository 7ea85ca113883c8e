package lumcat

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Matrix is a reference matrix - rows of cells under named columns
//
// column names and cells are compared trimmed (and NFKC normalised for codes); the header
// and rows passed to NewMatrix are never modified, so a Matrix can be shared between callers
type Matrix struct {
	names   []string
	columns map[string]int
	rows    [][]string
	index   []map[string]int
}

// NewMatrix creates a Matrix from a header row and data rows
//
// rows may be ragged (missing trailing cells are blank), rows with only blank cells are dropped
func NewMatrix(header []string, rows [][]string) *Matrix {
	m := &Matrix{
		names:   make([]string, len(header)),
		columns: make(map[string]int, len(header)),
		rows:    make([][]string, 0, len(rows)),
	}
	for i, name := range header {
		name = strings.TrimSpace(name)
		m.names[i] = name
		if _, exists := m.columns[name]; !exists {
			m.columns[name] = i
		}
	}
	for _, row := range rows {
		if !blankRow(row) {
			m.rows = append(m.rows, append([]string{}, row...))
		}
	}
	m.index = make([]map[string]int, len(header))
	for col := range m.index {
		idx := make(map[string]int)
		for r, row := range m.rows {
			if key := normalize(cell(row, col)); key != "" {
				if _, exists := idx[key]; !exists {
					idx[key] = r
				}
			}
		}
		m.index[col] = idx
	}
	return m
}

// Len returns the number of (non-blank) rows
func (m *Matrix) Len() int {
	if m == nil {
		return 0
	}
	return len(m.rows)
}

// Columns returns the trimmed column names
func (m *Matrix) Columns() []string {
	if m == nil {
		return nil
	}
	return append([]string{}, m.names...)
}

// Lookup finds the first row whose codeColumn equals code and returns its descColumn cell
func (m *Matrix) Lookup(codeColumn, descColumn, code string) (string, bool) {
	if m.Len() == 0 {
		return "", false
	}
	codeIdx, ok := m.columns[strings.TrimSpace(codeColumn)]
	if !ok {
		return "", false
	}
	descIdx, ok := m.columns[strings.TrimSpace(descColumn)]
	if !ok {
		return "", false
	}
	r, ok := m.index[codeIdx][normalize(code)]
	if !ok {
		return "", false
	}
	return strings.TrimSpace(cell(m.rows[r], descIdx)), true
}

func cell(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func normalize(code string) string {
	return strings.TrimSpace(norm.NFKC.String(code))
}
