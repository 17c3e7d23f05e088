package aura

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
)

// RGB is an opaque color with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Lerp linearly interpolates componentwise from c to other by t.
// t = 0 yields c and t = 1 yields other.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Scale multiplies every component by s.
func (c RGB) Scale(s float64) RGB {
	return RGB{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Add returns the componentwise sum of c and other.
func (c RGB) Add(other RGB) RGB {
	return RGB{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// WithAlpha converts c to a gg color with the given alpha.
func (c RGB) WithAlpha(a float64) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", unit8(c.R), unit8(c.G), unit8(c.B))
}

// Lerp interpolates between a quiet and a loud color by loudness t.
func Lerp(quiet, loud RGB, t float64) RGB {
	return quiet.Lerp(loud, t)
}

// ParseHex parses a color picker value such as "#ff8800" or "f80".
// Unlike gg.Hex, malformed input is an error instead of black.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 3 && len(h) != 6 {
		return RGB{}, &ColorError{Value: s}
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return RGB{}, &ColorError{Value: s}
		}
	}
	c := gg.Hex(h)
	return RGB{R: c.R, G: c.G, B: c.B}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level color literals.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// unit8 converts a [0, 1] value to a rounded byte, clamping.
func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ColorName identifies one of the four live color parameters.
type ColorName string

// Color parameter names, as used by color pickers and CLI flags.
const (
	ColorBase            ColorName = "base"
	ColorLoudBody        ColorName = "loud-body"
	ColorQuietBackground ColorName = "quiet-background"
	ColorLoudBackground  ColorName = "loud-background"
)

// Palette holds the four endpoint colors. Body colors blend from Base
// to LoudBody and background colors from QuietBackground to
// LoudBackground as loudness rises.
type Palette struct {
	Base            RGB
	LoudBody        RGB
	QuietBackground RGB
	LoudBackground  RGB
}

// DefaultPalette returns the palette used when none is configured.
func DefaultPalette() Palette {
	return Palette{
		Base:            MustParseHex("#66ccff"),
		LoudBody:        MustParseHex("#ff3399"),
		QuietBackground: MustParseHex("#000000"),
		LoudBackground:  MustParseHex("#2a0033"),
	}
}

// Body returns the body color at loudness level.
func (p Palette) Body(level float64) RGB {
	return Lerp(p.Base, p.LoudBody, level)
}

// Background returns the background color at loudness level.
func (p Palette) Background(level float64) RGB {
	return Lerp(p.QuietBackground, p.LoudBackground, level)
}

// With returns a copy of p with the named color replaced.
func (p Palette) With(name ColorName, c RGB) (Palette, error) {
	switch name {
	case ColorBase:
		p.Base = c
	case ColorLoudBody:
		p.LoudBody = c
	case ColorQuietBackground:
		p.QuietBackground = c
	case ColorLoudBackground:
		p.LoudBackground = c
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return p, nil
}
