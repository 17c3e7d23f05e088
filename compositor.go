package aura

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Compositor constants.
const (
	// BackgroundThreshold is the blurred mask value below which a pixel
	// is background. The comparison is strict: mask < threshold.
	BackgroundThreshold = 0.05

	// DefaultBlurRadius is the spacing of the 5x5 mask blur grid in
	// texels of the surface width.
	DefaultBlurRadius = 2.5

	// BodyMix is how far the aura gradient is blended toward the body
	// color.
	BodyMix = 0.8
)

// Fixed aura colors: the gradient runs from AuraInner to AuraOuter as
// mask confidence rises and HaloColor rims the silhouette edge.
var (
	AuraInner = RGB{0.1, 0.8, 1.0}
	AuraOuter = RGB{1.0, 0.1, 0.6}
	HaloColor = RGB{1.0, 0.5, 1.0}
)

// Uniforms are the per-frame compositor inputs.
type Uniforms struct {
	Level      float64 // audio level in [0, 1]
	Time       float64 // seconds since the session started
	Body       RGB     // body color already interpolated by Level
	Background RGB     // background color already interpolated by Level
}

// Compositor renders the aura layer from a segmentation mask.
//
// The uploaded mask plane and the blur grid geometry are kept between
// frames and overwritten in place; a Compositor is not safe for
// concurrent use.
type Compositor struct {
	width, height int
	blurRadius    float64

	mask []float32
	gray *image.Gray
}

// NewCompositor creates a compositor for a width x height surface.
func NewCompositor(width, height int) (*Compositor, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Compositor{
		width:      width,
		height:     height,
		blurRadius: DefaultBlurRadius,
		mask:       make([]float32, width*height),
		gray:       image.NewGray(image.Rect(0, 0, width, height)),
	}, nil
}

// SetBlurRadius changes the blur grid spacing. Non-positive values
// disable the blur.
func (c *Compositor) SetBlurRadius(r float64) {
	c.blurRadius = r
}

// Size returns the surface size.
func (c *Compositor) Size() (int, int) {
	return c.width, c.height
}

// UploadMask replaces the mask plane with img's luminance. Masks of a
// different size are scaled to the surface with bilinear filtering.
func (c *Compositor) UploadMask(img image.Image) {
	b := img.Bounds()
	if g, ok := img.(*image.Gray); ok && b.Dx() == c.width && b.Dy() == c.height {
		for y := 0; y < c.height; y++ {
			row := g.Pix[y*g.Stride : y*g.Stride+c.width]
			for x, v := range row {
				c.mask[y*c.width+x] = float32(v) / 255
			}
		}
		return
	}

	draw.BiLinear.Scale(c.gray, c.gray.Bounds(), img, b, draw.Src, nil)
	for i, v := range c.gray.Pix {
		c.mask[i] = float32(v) / 255
	}
}

// SampleMask samples the mask at normalized (u, v) with bilinear
// filtering and clamp-to-edge addressing.
func (c *Compositor) SampleMask(u, v float64) float64 {
	tx := u*float64(c.width) - 0.5
	ty := v*float64(c.height) - 0.5
	x0 := math.Floor(tx)
	y0 := math.Floor(ty)
	fx := tx - x0
	fy := ty - y0

	ix, iy := int(x0), int(y0)
	m00 := c.texel(ix, iy)
	m10 := c.texel(ix+1, iy)
	m01 := c.texel(ix, iy+1)
	m11 := c.texel(ix+1, iy+1)

	top := m00 + (m10-m00)*fx
	bottom := m01 + (m11-m01)*fx
	return top + (bottom-top)*fy
}

func (c *Compositor) texel(x, y int) float64 {
	x = clampIndex(x, c.width)
	y = clampIndex(y, c.height)
	return float64(c.mask[y*c.width+x])
}

// BlurredMask averages the mask over a 5x5 grid around (u, v). Grid
// points are blurRadius/width apart in both u and v.
func (c *Compositor) BlurredMask(u, v float64) float64 {
	if c.blurRadius <= 0 {
		return c.SampleMask(u, v)
	}
	step := c.blurRadius / float64(c.width)
	var sum float64
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			sum += c.SampleMask(u+float64(i)*step, v+float64(j)*step)
		}
	}
	return sum / 25
}

// Composite renders the aura layer into dst, which must match the
// surface size. Pixels are stored premultiplied, as gg.Pixmap holds them.
func (c *Compositor) Composite(dst *gg.Pixmap, u Uniforms) {
	w := float64(c.width)
	h := float64(c.height)
	data := dst.Data()
	stride := dst.Width()

	bg := Shade(0, u)
	bgPx := toPixel(bg)

	for y := 0; y < c.height && y < dst.Height(); y++ {
		v := (float64(y) + 0.5) / h
		for x := 0; x < c.width && x < stride; x++ {
			uu := (float64(x) + 0.5) / w
			m := c.BlurredMask(uu, v)

			i := (y*stride + x) * 4
			if m < BackgroundThreshold {
				copy(data[i:i+4], bgPx[:])
				continue
			}
			px := toPixel(Shade(m, u))
			copy(data[i:i+4], px[:])
		}
	}
	dst.NotifyPixelsChanged()
}

// Shade computes the aura color for a blurred mask value m.
//
// Below BackgroundThreshold the pixel is the opaque background color.
// Otherwise the cyan-to-magenta aura, scaled by its own glow, plus a
// white-pink halo is blended 80% toward the body color, with the soft
// edge as alpha.
func Shade(m float64, u Uniforms) gg.RGBA {
	if m < BackgroundThreshold {
		return u.Background.WithAlpha(1)
	}
	softEdge, auraGlow, halo := EdgeTerms(m)
	aura := AuraInner.Lerp(AuraOuter, auraGlow)
	glow := aura.Scale(auraGlow).Add(HaloColor.Scale(halo * 0.5))
	return glow.Lerp(u.Body, BodyMix).WithAlpha(softEdge)
}

// EdgeTerms returns the smoothed thresholds of a blurred mask value:
// softEdge over [0.1, 0.5], auraGlow over [0.1, 0.9] and halo over
// [0, 0.1].
func EdgeTerms(m float64) (softEdge, auraGlow, halo float64) {
	return Smoothstep(0.1, 0.5, m), Smoothstep(0.1, 0.9, m), Smoothstep(0.0, 0.1, m)
}

// Smoothstep is the Hermite interpolation of x between edge0 and edge1,
// saturating to 0 below edge0 and 1 above edge1.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := (x - edge0) / (edge1 - edge0)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return t * t * (3 - 2*t)
}

// toPixel converts a straight color to premultiplied pixmap bytes.
func toPixel(c gg.RGBA) [4]uint8 {
	a := clamp01(c.A)
	return [4]uint8{
		unit8(clamp01(c.R) * a),
		unit8(clamp01(c.G) * a),
		unit8(clamp01(c.B) * a),
		unit8(a),
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
