package lumcat

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	lightspec "github.com/patrickjamesbenson/linear-lightspec-optimiser-sub000"
)

var ErrMalformedCatalog = errors.New("malformed catalog code")

const (
	separator     = "-"
	payloadLength = 14
)

// Code is a LUMCAT catalog code split into its fixed position sub-codes
//
// e.g. "B852-__A3___1488030" splits into range "B852" and the 14 payload characters
type Code struct {
	Range    string
	Option   string // payload 0:2
	Diffuser string // payload 2:4
	Wiring   string // payload 4:5
	Driver   string // payload 5:7
	Lumens   string // payload 7:10
	CRI      string // payload 10:12
	CCT      string // payload 12:14
	// LumensDisplay is the Lumens sub-code as an integer multiplied by 10
	LumensDisplay float64
}

// Parse splits a catalog code on its first '-' and slices the fixed position payload
//
// payload characters beyond the first 14 are ignored
func Parse(catalog string) (Code, error) {
	rng, rest, ok := strings.Cut(catalog, separator)
	if !ok {
		return Code{}, fmt.Errorf("%w: %q has no %q separator", ErrMalformedCatalog, catalog, separator)
	}
	payload := []rune(rest)
	if len(payload) < payloadLength {
		return Code{}, fmt.Errorf("%w: %q payload has %d characters, need at least %d", ErrMalformedCatalog, catalog, len(payload), payloadLength)
	}
	result := Code{
		Range:    rng,
		Option:   string(payload[0:2]),
		Diffuser: string(payload[2:4]),
		Wiring:   string(payload[4:5]),
		Driver:   string(payload[5:7]),
		Lumens:   string(payload[7:10]),
		CRI:      string(payload[10:12]),
		CCT:      string(payload[12:14]),
	}
	lumens, err := strconv.Atoi(result.Lumens)
	if err != nil {
		return Code{}, fmt.Errorf("%w: lumens sub-code %q in %q", lightspec.ErrNumericParse, result.Lumens, catalog)
	}
	result.LumensDisplay = math.Round(float64(lumens)*10*10) / 10
	return result, nil
}

// String rebuilds the catalog code (range, separator and 14 payload characters)
func (c Code) String() string {
	return c.Range + separator + c.Option + c.Diffuser + c.Wiring + c.Driver + c.Lumens + c.CRI + c.CCT
}

// LumensText is the display form of LumensDisplay, e.g. "1480.0 lm"
func (c Code) LumensText() string {
	return fmt.Sprintf("%.1f lm", c.LumensDisplay)
}
