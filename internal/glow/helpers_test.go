package glow

import "github.com/gogpu/gg"

// Test helper functions shared across glow tests.

// createTestPixmap creates a pixmap filled with the given color.
func createTestPixmap(w, h int, color gg.RGBA) *gg.Pixmap {
	p := gg.NewPixmap(w, h)
	p.Clear(color)
	return p
}

// colorApproxEqual compares two colors with tolerance.
func colorApproxEqual(a, b gg.RGBA, tolerance float64) bool {
	return absf(a.R-b.R) < tolerance &&
		absf(a.G-b.G) < tolerance &&
		absf(a.B-b.B) < tolerance &&
		absf(a.A-b.A) < tolerance
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
