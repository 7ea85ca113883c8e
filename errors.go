package lightspec

import "errors"

// error kinds - use errors.Is to test for them
var (
	ErrMalformedHeader          = errors.New("malformed header")
	ErrUnsupportedTilt          = errors.New("unsupported tilt")
	ErrMalformedPhotometricLine = errors.New("malformed photometric line")
	ErrAngleCountMismatch       = errors.New("angle count mismatch")
	ErrAngleOrder               = errors.New("angles not in ascending order")
	ErrNumericParse             = errors.New("numeric parse error")
	ErrDegenerateAngles         = errors.New("degenerate angles")
	ErrInvalidSymmetry          = errors.New("invalid symmetry factor")
	ErrNotSupported             = errors.New("not supported")
)
