package lightspec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PhotometricType is the LM-63 photometric type (goniometer system)
type PhotometricType int

const (
	PhotometricTypeC PhotometricType = 1
	PhotometricTypeB PhotometricType = 2
	PhotometricTypeA PhotometricType = 3
)

func (t PhotometricType) String() string {
	switch t {
	case PhotometricTypeC:
		return "C"
	case PhotometricTypeB:
		return "B"
	case PhotometricTypeA:
		return "A"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// UnitsType is the LM-63 units type for the luminous opening dimensions
type UnitsType int

const (
	UnitsFeet   UnitsType = 1
	UnitsMeters UnitsType = 2
)

func (u UnitsType) String() string {
	switch u {
	case UnitsFeet:
		return "feet"
	case UnitsMeters:
		return "meters"
	}
	return fmt.Sprintf("unknown(%d)", int(u))
}

func (r *PhotometricRecord) param(i int) (Param, bool) {
	if i < len(r.Params) {
		return r.Params[i], true
	}
	return Param{}, false
}

func (r *PhotometricRecord) float(i int) float64 {
	p, _ := r.param(i)
	return p.Float64()
}

func (r *PhotometricRecord) whole(i int) int {
	p, _ := r.param(i)
	v, _ := p.Whole()
	return v
}

func (r *PhotometricRecord) NumLamps() int { return r.whole(ParamLamps) }
func (r *PhotometricRecord) LumensPerLamp() float64 { return r.float(ParamLumensPerLamp) }
func (r *PhotometricRecord) CandelaMultiplier() float64 { return r.float(ParamCandelaMultiplier) }
func (r *PhotometricRecord) NumVertical() int { return r.whole(ParamVerticalCount) }
func (r *PhotometricRecord) NumHorizontal() int { return r.whole(ParamHorizontalCount) }
func (r *PhotometricRecord) Width() float64 { return r.float(ParamWidth) }
func (r *PhotometricRecord) Length() float64 { return r.float(ParamLength) }
func (r *PhotometricRecord) Height() float64 { return r.float(ParamHeight) }

func (r *PhotometricRecord) PhotometricType() PhotometricType {
	return PhotometricType(r.whole(ParamPhotometricType))
}

func (r *PhotometricRecord) UnitsType() UnitsType {
	return UnitsType(r.whole(ParamUnitsType))
}

// BallastFactor returns the ballast factor from the ballast line (1 when the file has none)
func (r *PhotometricRecord) BallastFactor() float64 {
	if p, ok := r.param(ParamBallastFactor); ok {
		return p.Float64()
	}
	return 1
}

// InputWatts returns the input watts from the ballast line
func (r *PhotometricRecord) InputWatts() (float64, bool) {
	p, ok := r.param(ParamInputWatts)
	return p.Float64(), ok
}

// RatedLumens returns the number of lamps multiplied by the lumens per lamp
//
// returns false for absolute photometry (lumens per lamp of -1)
func (r *PhotometricRecord) RatedLumens() (float64, bool) {
	lpl := r.LumensPerLamp()
	if lpl < 0 {
		return 0, false
	}
	return float64(r.NumLamps()) * lpl, true
}

// MaxCandela returns the highest intensity value in the candela matrix
func (r *PhotometricRecord) MaxCandela() float64 {
	result := 0.0
	for _, row := range r.Candela {
		for _, v := range row {
			if v > result {
				result = v
			}
		}
	}
	return result
}

// CandelaDense returns a copy of the candela matrix as a gonum dense matrix
// (rows are horizontal angles, columns are vertical angles)
func (r *PhotometricRecord) CandelaDense() (*mat.Dense, error) {
	if err := r.checkShape(); err != nil {
		return nil, err
	}
	nHorz, nVert := len(r.HorizontalAngles), len(r.VerticalAngles)
	data := make([]float64, 0, nHorz*nVert)
	for _, row := range r.Candela {
		data = append(data, row...)
	}
	return mat.NewDense(nHorz, nVert, data), nil
}

func (r *PhotometricRecord) checkShape() error {
	nVert := len(r.VerticalAngles)
	if nVert == 0 || len(r.HorizontalAngles) == 0 {
		return fmt.Errorf("%w: record has no angles", ErrAngleCountMismatch)
	}
	if len(r.Candela) != len(r.HorizontalAngles) {
		return fmt.Errorf("%w: %d candela rows for %d horizontal angles", ErrAngleCountMismatch, len(r.Candela), len(r.HorizontalAngles))
	}
	for h, row := range r.Candela {
		if len(row) != nVert {
			return fmt.Errorf("%w: candela row #%d has %d values for %d vertical angles", ErrAngleCountMismatch, h+1, len(row), nVert)
		}
	}
	return nil
}
