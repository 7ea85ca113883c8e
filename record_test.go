package lightspec

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseParam(t *testing.T) {
	testCases := []struct {
		token  string
		expect Param
	}{
		{"1", IntParam(1)},
		{"-1", IntParam(-1)},
		{"1000", IntParam(1000)},
		{"1.0", FloatParam(1.0)},
		{"0.06", FloatParam(0.06)},
		{"1e3", FloatParam(1000)},
		{"2.5E-1", FloatParam(0.25)},
		{".5", FloatParam(0.5)},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			p, err := parseParam(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, p)
		})
	}
	for _, token := range []string{"x", "1.2.3", "NaN", "inf", "1,5", "1e"} {
		t.Run("Bad_"+token, func(t *testing.T) {
			_, err := parseParam(token)
			assert.ErrorIs(t, err, ErrNumericParse)
		})
	}
}

func TestParam(t *testing.T) {
	assert.Equal(t, "1000", IntParam(1000).String())
	assert.Equal(t, "0.06", FloatParam(0.06).String())
	assert.Equal(t, 12.0, IntParam(12).Float64())
	v, ok := FloatParam(3.0).Whole()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	_, ok = FloatParam(3.5).Whole()
	assert.False(t, ok)
	v, ok = IntParam(7).Whole()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestPhotometricRecord_Accessors(t *testing.T) {
	rec := openSample(t, "default/quarter_lm63_2002.ies")
	assert.Equal(t, 1, rec.NumLamps())
	assert.Equal(t, -1.0, rec.LumensPerLamp())
	assert.Equal(t, 1.0, rec.CandelaMultiplier())
	assert.Equal(t, 5, rec.NumVertical())
	assert.Equal(t, 3, rec.NumHorizontal())
	assert.Equal(t, PhotometricTypeC, rec.PhotometricType())
	assert.Equal(t, "C", rec.PhotometricType().String())
	assert.Equal(t, UnitsMeters, rec.UnitsType())
	assert.Equal(t, "meters", rec.UnitsType().String())
	assert.Equal(t, 0.06, rec.Width())
	assert.Equal(t, 1.2, rec.Length())
	assert.Equal(t, 0.0, rec.Height())
	assert.Equal(t, 400.0, rec.MaxCandela())
	_, ok := rec.RatedLumens()
	assert.False(t, ok)

	rec, err := ParseIES(minimalIES, nil)
	require.NoError(t, err)
	lumens, ok := rec.RatedLumens()
	assert.True(t, ok)
	assert.Equal(t, 1000.0, lumens)
	assert.Equal(t, 1.0, rec.BallastFactor())
	_, ok = rec.InputWatts()
	assert.False(t, ok)
	assert.Equal(t, "unknown(9)", PhotometricType(9).String())
	assert.Equal(t, "feet", UnitsFeet.String())
}

func TestPhotometricRecord_CandelaDense(t *testing.T) {
	rec := openSample(t, "default/quarter_lm63_2002.ies")
	m, err := rec.CandelaDense()
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 5, c)
	assert.Equal(t, 370.0, m.At(1, 1))
	m.Set(1, 1, 0)
	assert.Equal(t, 370.0, rec.Candela[1][1])

	_, err = (&PhotometricRecord{}).CandelaDense()
	assert.ErrorIs(t, err, ErrAngleCountMismatch)
}

func TestSymmetry(t *testing.T) {
	for _, v := range []int{1, 2, 4} {
		s, err := ParseSymmetryFactor(v)
		require.NoError(t, err)
		assert.Equal(t, SymmetryFactor(v), s)
	}
	for _, v := range []int{0, 3, 8, -1} {
		_, err := ParseSymmetryFactor(v)
		assert.ErrorIs(t, err, ErrInvalidSymmetry)
	}
	assert.Equal(t, SymmetryQuarter, InferSymmetry([]float64{0, 45, 90}))
	assert.Equal(t, SymmetryHalf, InferSymmetry([]float64{0, 90, 180}))
	assert.Equal(t, SymmetryHalf, InferSymmetry([]float64{90, 180, 270}))
	assert.Equal(t, SymmetryNone, InferSymmetry([]float64{0, 180, 360}))
	assert.Equal(t, SymmetryNone, InferSymmetry([]float64{0}))
}
