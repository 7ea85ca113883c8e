package lightspec

import "fmt"

// SymmetryFactor is the multiplier applied to flux when the photometric data only
// covers a part of the azimuth
type SymmetryFactor int

const (
	SymmetryNone    SymmetryFactor = 1 // full azimuth
	SymmetryHalf    SymmetryFactor = 2 // data covers half the azimuth
	SymmetryQuarter SymmetryFactor = 4 // data covers a quarter of the azimuth
)

// ParseSymmetryFactor checks that v is one of 1, 2 or 4
func ParseSymmetryFactor(v int) (SymmetryFactor, error) {
	s := SymmetryFactor(v)
	if !s.valid() {
		return 0, fmt.Errorf("%w: %d (must be 1, 2 or 4)", ErrInvalidSymmetry, v)
	}
	return s, nil
}

func (s SymmetryFactor) valid() bool {
	return s == SymmetryNone || s == SymmetryHalf || s == SymmetryQuarter
}

// InferSymmetry suggests a symmetry factor from the span of the horizontal angles
//
// a 0-90 quarter gives SymmetryQuarter, a 0-180 (or 90-270) half gives SymmetryHalf,
// anything else (including a single azimuth) gives SymmetryNone
func InferSymmetry(horizontalAngles []float64) SymmetryFactor {
	if len(horizontalAngles) < 2 {
		return SymmetryNone
	}
	span := horizontalAngles[len(horizontalAngles)-1] - horizontalAngles[0]
	switch span {
	case 90:
		return SymmetryQuarter
	case 180:
		return SymmetryHalf
	}
	return SymmetryNone
}
