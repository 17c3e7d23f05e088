package glow

import (
	"image"

	"github.com/gogpu/gg"
)

// extractAlpha copies the alpha channel of pm inside r into plane,
// normalized to [0, 1]. Pixels outside r are left untouched.
func extractAlpha(pm *gg.Pixmap, plane []float32, r image.Rectangle) {
	width := pm.Width()
	data := pm.Data()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*width + x
			plane[i] = float32(data[i*4+3]) / 255.0
		}
	}
}

// blurAlpha applies a separable Gaussian blur to the width-wide alpha
// plane within r, in place. tmp must be as large as plane. Samples
// outside r read as zero, so r must already cover the blur spread.
func blurAlpha(plane, tmp []float32, width int, r image.Rectangle, kernel []float32) {
	half := len(kernel) / 2

	// Horizontal pass: plane -> tmp
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * width
		for x := r.Min.X; x < r.Max.X; x++ {
			var sum float32
			for k, w := range kernel {
				kx := x + k - half
				if kx < r.Min.X || kx >= r.Max.X {
					continue
				}
				sum += plane[row+kx] * w
			}
			tmp[row+x] = sum
		}
	}

	// Vertical pass: tmp -> plane
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			var sum float32
			for k, w := range kernel {
				ky := y + k - half
				if ky < r.Min.Y || ky >= r.Max.Y {
					continue
				}
				sum += tmp[ky*width+x] * w
			}
			plane[y*width+x] = sum
		}
	}
}

// coverageBounds returns the smallest rectangle holding every pixel of
// pm with non-zero alpha. It is empty when pm is fully transparent.
func coverageBounds(pm *gg.Pixmap) image.Rectangle {
	width, height := pm.Width(), pm.Height()
	data := pm.Data()

	minX, minY := width, height
	maxX, maxY := -1, -1
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			if data[(row+x)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
