package shader

import "errors"

var (
	// ErrEmptySource is returned when compiling an empty source.
	ErrEmptySource = errors.New("shader: empty source")

	// ErrMalformedSPIRV is returned when the compiler output is not a
	// SPIR-V module.
	ErrMalformedSPIRV = errors.New("shader: compiler output is not SPIR-V")
)
