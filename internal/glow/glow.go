package glow

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Glow tints and composites a blurred copy of a layer's coverage under
// the layer itself.
//
// A Glow reuses its scratch planes between calls and is not safe for
// concurrent use.
type Glow struct {
	// Radius is the blur radius in pixels (canvas shadowBlur).
	Radius float64

	// Color tints the glow; its alpha scales the blurred coverage.
	Color gg.RGBA

	plane []float32
	tmp   []float32
}

// New creates a glow with the given radius and color.
func New(radius float64, color gg.RGBA) *Glow {
	return &Glow{Radius: radius, Color: color}
}

// Sigma returns the Gaussian standard deviation for the radius.
func (g *Glow) Sigma() float64 {
	return g.Radius / 2
}

// Spread returns how far, in whole pixels, the glow reaches beyond the
// covered pixels.
func (g *Glow) Spread() int {
	if g.Radius <= 0 {
		return 0
	}
	return int(math.Ceil(g.Sigma() * 3))
}

// Apply composites the glow of layer under layer, in place.
// It is a no-op for a non-positive radius or a transparent layer.
func (g *Glow) Apply(layer *gg.Pixmap) {
	if layer == nil || g.Radius <= 0 {
		return
	}
	covered := coverageBounds(layer)
	if covered.Empty() {
		return
	}

	width, height := layer.Width(), layer.Height()
	spread := g.Spread()
	r := image.Rect(
		covered.Min.X-spread, covered.Min.Y-spread,
		covered.Max.X+spread, covered.Max.Y+spread,
	).Intersect(layer.Bounds())

	g.ensure(width * height)
	clearPlane(g.plane, width, r)
	extractAlpha(layer, g.plane, r)
	blurAlpha(g.plane, g.tmp, width, r, CachedGaussianKernel(g.Sigma()))
	compositeUnder(layer, g.plane, r, g.Color)
}

func (g *Glow) ensure(n int) {
	if len(g.plane) < n {
		g.plane = make([]float32, n)
		g.tmp = make([]float32, n)
	}
}

func clearPlane(plane []float32, width int, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := plane[y*width+r.Min.X : y*width+r.Max.X]
		for i := range row {
			row[i] = 0
		}
	}
}

// compositeUnder draws the tinted coverage plane under the pixels of pm
// within r: premultiplied source-over with pm as the source.
func compositeUnder(pm *gg.Pixmap, plane []float32, r image.Rectangle, tint gg.RGBA) {
	width := pm.Width()
	data := pm.Data()
	tr, tg, tb := float32(tint.R), float32(tint.G), float32(tint.B)
	ta := float32(tint.A)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := y*width + x
			glowA := plane[i] * ta
			if glowA <= 0 {
				continue
			}
			p := data[i*4 : i*4+4]
			under := glowA * (1 - float32(p[3])/255)
			p[0] = toByte(float32(p[0])/255 + tr*under)
			p[1] = toByte(float32(p[1])/255 + tg*under)
			p[2] = toByte(float32(p[2])/255 + tb*under)
			p[3] = toByte(float32(p[3])/255 + under)
		}
	}
	pm.NotifyPixelsChanged()
}

// toByte converts a [0, 1] value to a rounded byte, clamping.
func toByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
