package lightspec

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FluxOptions represents the options passed to Flux and IntegrateFlux
type FluxOptions struct {
	// ErrorOnZeroSpan determines whether a horizontal span of zero degrees (first and last
	// horizontal angles equal) is an error
	//
	// defaults to false - a warning is logged (if there is a Logger) and the flux is zero
	ErrorOnZeroSpan bool
	// Logger receives integration warnings (nil means warnings are discarded)
	Logger *log.Logger
}

// Flux computes the total luminous flux (lumens) of the record, rounded to one decimal place
//
// if the FluxOptions supplied is nil, default options are used
func Flux(r *PhotometricRecord, symmetry SymmetryFactor, options *FluxOptions) (float64, error) {
	flux, err := IntegrateFlux(r, symmetry, options)
	if err != nil {
		return 0, err
	}
	return roundTo1(flux), nil
}

// Flux computes the total luminous flux (lumens) of the record, rounded to one decimal place
func (r *PhotometricRecord) Flux(symmetry SymmetryFactor, options *FluxOptions) (float64, error) {
	return Flux(r, symmetry, options)
}

// IntegrateFlux is Flux without the final rounding
//
// the candela matrix is integrated over the sphere as Σh Σv I(h,v)·sin θv·Δθv·Δφ, where
// Δθv is the forward step to the next vertical angle (the last step repeats) and Δφ is the
// horizontal span divided by the number of horizontal angles
func IntegrateFlux(r *PhotometricRecord, symmetry SymmetryFactor, options *FluxOptions) (float64, error) {
	if options == nil {
		options = &FluxOptions{}
	}
	if !symmetry.valid() {
		return 0, fmt.Errorf("%w: %d (must be 1, 2 or 4)", ErrInvalidSymmetry, int(symmetry))
	}
	if len(r.VerticalAngles) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 vertical angles, got %d", ErrDegenerateAngles, len(r.VerticalAngles))
	}
	candela, err := r.CandelaDense()
	if err != nil {
		return 0, err
	}
	nHorz := len(r.HorizontalAngles)
	span := r.HorizontalAngles[nHorz-1] - r.HorizontalAngles[0]
	if span == 0 {
		if options.ErrorOnZeroSpan {
			return 0, fmt.Errorf("%w: horizontal angles span zero degrees", ErrDegenerateAngles)
		}
		if nHorz > 1 {
			warnf(options.Logger, "%d horizontal angles all at %g degrees - azimuth span is zero", nHorz, r.HorizontalAngles[0])
		} else {
			warnf(options.Logger, "single horizontal angle - azimuth span is zero")
		}
	}
	dPhi := radians(span) / float64(nHorz)
	weights := mat.NewVecDense(len(r.VerticalAngles), verticalWeights(r.VerticalAngles, dPhi))
	var perAzimuth mat.VecDense
	perAzimuth.MulVec(candela, weights)
	return mat.Sum(&perAzimuth) * float64(symmetry), nil
}

// verticalWeights returns sin θv·Δθv·Δφ for each vertical angle
func verticalWeights(verticalAngles []float64, dPhi float64) []float64 {
	n := len(verticalAngles)
	theta := make([]float64, n)
	for i, a := range verticalAngles {
		theta[i] = radians(a)
	}
	result := make([]float64, n)
	for i := range theta {
		var dTheta float64
		if i < n-1 {
			dTheta = theta[i+1] - theta[i]
		} else {
			dTheta = theta[n-1] - theta[n-2]
		}
		result[i] = math.Sin(theta[i]) * dTheta * dPhi
	}
	return result
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
