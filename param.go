package lightspec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Param is a single photometric scalar
//
// tokens written without a decimal point or exponent keep their exact integer value
type Param struct {
	IsInt bool
	Int   int64
	Float float64
}

// IntParam creates an integer Param
func IntParam(v int64) Param {
	return Param{IsInt: true, Int: v, Float: float64(v)}
}

// FloatParam creates a real Param
func FloatParam(v float64) Param {
	return Param{Float: v}
}

// Float64 returns the value as a float64 (whichever way it was written)
func (p Param) Float64() float64 {
	if p.IsInt {
		return float64(p.Int)
	}
	return p.Float
}

// Whole returns the value as an int when it has no fractional part
func (p Param) Whole() (int, bool) {
	if p.IsInt {
		return int(p.Int), true
	}
	if p.Float != math.Trunc(p.Float) || math.IsInf(p.Float, 0) || math.IsNaN(p.Float) {
		return 0, false
	}
	return int(p.Float), true
}

func (p Param) String() string {
	if p.IsInt {
		return strconv.FormatInt(p.Int, 10)
	}
	return strconv.FormatFloat(p.Float, 'g', -1, 64)
}

func parseParam(token string) (Param, error) {
	if strings.ContainsAny(token, ".eE") {
		f, err := parseFloat(token)
		if err != nil {
			return Param{}, err
		}
		return FloatParam(f), nil
	}
	i, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return Param{}, fmt.Errorf("%w: %q is not an integer", ErrNumericParse, token)
	}
	return IntParam(i), nil
}

func parseFloat(token string) (float64, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrNumericParse, token)
	}
	return f, nil
}
