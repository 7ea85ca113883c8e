package lumcat

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"strings"
	"testing"
)

const testCSV = ` Option Code ,Option Description,Diffuser / Louvre Code,Diffuser / Louvre Description,CRI Code,CRI Description,CCT/Colour Code,CCT/Colour Description
__,Standard,A3,Opal acrylic,80,CRI 80+,30,3000K warm white
EM,Emergency,L1,Low glare louvre
`

func TestReadCSV(t *testing.T) {
	m, err := ReadCSV(strings.NewReader(testCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Option Code", m.Columns()[0])
	desc, ok, err := Decode("B852-EML1___1488030", m)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Emergency", desc.Option)
	assert.Equal(t, "Low glare louvre", desc.Diffuser)
	assert.Equal(t, NotFound, desc.Wiring)
	assert.Equal(t, "CRI 80+", desc.CRI)
	assert.Equal(t, "3000K warm white", desc.CCT)
}

func TestReadCSV_Empty(t *testing.T) {
	m, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())

	m, err = ReadCSV(strings.NewReader("Option Code,Option Description\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestReadCSV_Malformed(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Option \"Code\",Option Description\n"))
	assert.ErrorContains(t, err, "failed to read CSV header")

	_, err = ReadCSV(strings.NewReader("Option Code,Option Description\n__,Sta\"ndard\n"))
	assert.ErrorContains(t, err, "failed to read CSV rows")
}

func testWorkbook(t *testing.T, sheet string, rows [][]any) *bytes.Buffer {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadXLSX(t *testing.T) {
	rows := [][]any{
		{"Option Code", "Option Description", "CRI Code", "CRI Description", "CCT/Colour Code ", "CCT/Colour Description"},
		{"__", "Standard", 80, "CRI 80+", 30, "3000K warm white"},
		{"EM", "Emergency", 90, "CRI 90+", 40, "4000K neutral white"},
	}

	t.Run("FirstSheet", func(t *testing.T) {
		m, err := ReadXLSX(testWorkbook(t, "Sheet1", rows), "")
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
		desc, ok, err := Decode("B852-EMA3___1489040", m)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Emergency", desc.Option)
		assert.Equal(t, "CRI 90+", desc.CRI)
		assert.Equal(t, "4000K neutral white", desc.CCT)
		assert.Equal(t, NotFound, desc.Diffuser)
	})

	t.Run("NamedSheet", func(t *testing.T) {
		m, err := ReadXLSX(testWorkbook(t, "LumCAT", rows), "LumCAT")
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("MissingSheet", func(t *testing.T) {
		_, err := ReadXLSX(testWorkbook(t, "Sheet1", rows), "Nope")
		assert.ErrorContains(t, err, `failed to read worksheet "Nope"`)
	})

	t.Run("EmptySheet", func(t *testing.T) {
		m, err := ReadXLSX(testWorkbook(t, "Sheet1", nil), "")
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})

	t.Run("NotAWorkbook", func(t *testing.T) {
		_, err := ReadXLSX(strings.NewReader("not a workbook"), "")
		assert.ErrorContains(t, err, "failed to open workbook")
	})
}
