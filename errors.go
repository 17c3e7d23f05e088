package aura

import "errors"

// Sentinel errors for the aura package.
var (
	// ErrInvalidSize is returned when a surface dimension is not positive.
	ErrInvalidSize = errors.New("aura: surface dimensions must be positive")

	// ErrNoMask is returned when a frame carries no segmentation mask.
	ErrNoMask = errors.New("aura: frame has no segmentation mask")

	// ErrUnknownColor is returned by SetColor for an unknown parameter name.
	ErrUnknownColor = errors.New("aura: unknown color parameter")
)

// ColorError is returned when a color string cannot be parsed.
type ColorError struct {
	Value string
}

func (e *ColorError) Error() string {
	return "aura: invalid hex color " + `"` + e.Value + `"`
}
