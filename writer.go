package lightspec

import (
	"fmt"
	"io"
)

// WriteIES would write the record out in LM-63 format
//
// not yet supported - always returns ErrNotSupported
func WriteIES(w io.Writer, r *PhotometricRecord) error {
	return fmt.Errorf("%w: writing IES files", ErrNotSupported)
}
