package aura

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Test helper functions shared across aura tests.

func rgbApproxEqual(a, b RGB, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance
}

func rgbaApproxEqual(a, b gg.RGBA, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance &&
		math.Abs(a.A-b.A) < tolerance
}

// uniformMask returns a gray image with every pixel set to v.
func uniformMask(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}
