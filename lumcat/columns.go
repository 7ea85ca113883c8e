package lumcat

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ColumnPair names the matrix column holding a sub-code and the column holding its description
type ColumnPair struct {
	Code        string `toml:"code"`
	Description string `toml:"description"`
}

// Columns is the reference matrix layout used to resolve each coded field
type Columns struct {
	Option   ColumnPair `toml:"option"`
	Diffuser ColumnPair `toml:"diffuser"`
	Wiring   ColumnPair `toml:"wiring"`
	Driver   ColumnPair `toml:"driver"`
	CRI      ColumnPair `toml:"cri"`
	CCT      ColumnPair `toml:"cct"`
}

// DefaultColumns returns the standard LumCAT configuration matrix layout
func DefaultColumns() *Columns {
	return &Columns{
		Option:   ColumnPair{Code: "Option Code", Description: "Option Description"},
		Diffuser: ColumnPair{Code: "Diffuser / Louvre Code", Description: "Diffuser / Louvre Description"},
		Wiring:   ColumnPair{Code: "Wiring Code", Description: "Wiring Description"},
		Driver:   ColumnPair{Code: "Driver Code", Description: "Driver Description"},
		CRI:      ColumnPair{Code: "CRI Code", Description: "CRI Description"},
		CCT:      ColumnPair{Code: "CCT/Colour Code", Description: "CCT/Colour Description"},
	}
}

// LoadColumns reads a TOML column layout - anything not mentioned keeps its default
//
//	[cct]
//	code = "Colour Code"
//	description = "Colour"
func LoadColumns(data []byte) (*Columns, error) {
	cols := DefaultColumns()
	if err := toml.Unmarshal(data, cols); err != nil {
		return nil, fmt.Errorf("failed to parse column layout: %w", err)
	}
	return cols, nil
}
