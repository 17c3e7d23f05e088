package aura

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/gg-aura/internal/glow"
)

// Canvas is the 2D drawing surface the skeleton overlay draws on.
//
// Its state model follows an HTML canvas: color, line width and glow
// persist until changed and apply to subsequent draw calls.
type Canvas interface {
	// Size returns the surface size in pixels.
	Size() (width, height int)

	// Clear makes every pixel transparent.
	Clear()

	// SetColor sets the stroke and fill color.
	SetColor(c gg.RGBA)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// SetGlow sets the glow radius and color for subsequent draws.
	// A radius of 0 turns the glow off.
	SetGlow(radius float64, c gg.RGBA)

	// StrokeLine strokes a segment.
	StrokeLine(x1, y1, x2, y2 float64)

	// StrokeCircle strokes a circle outline.
	StrokeCircle(x, y, r float64)

	// FillCircle fills a disc.
	FillCircle(x, y, r float64)
}

// PixmapCanvas is a Canvas backed by a gg.Context.
//
// Glowing draws are also drawn onto a separate glow layer. When the glow
// is turned off, or on Flush, the layer's coverage is blurred, tinted and
// composited under the strokes drawn so far.
type PixmapCanvas struct {
	dc     *gg.Context
	glowDC *gg.Context
	glow   *glow.Glow

	color     gg.RGBA
	lineWidth float64
	pending   bool
}

var _ Canvas = (*PixmapCanvas)(nil)

// NewPixmapCanvas creates a transparent canvas of the given size.
func NewPixmapCanvas(width, height int) *PixmapCanvas {
	c := &PixmapCanvas{
		dc:        gg.NewContext(width, height),
		glowDC:    gg.NewContext(width, height),
		glow:      glow.New(0, gg.Transparent),
		color:     gg.Black,
		lineWidth: 1,
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.glowDC.SetLineCap(gg.LineCapRound)
	return c
}

// Size implements Canvas.
func (c *PixmapCanvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Clear implements Canvas. Pending glow is discarded.
func (c *PixmapCanvas) Clear() {
	c.dc.Clear()
	c.glowDC.Clear()
	c.pending = false
}

// SetColor implements Canvas.
func (c *PixmapCanvas) SetColor(col gg.RGBA) {
	c.color = col
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.glowDC.SetRGBA(col.R, col.G, col.B, col.A)
}

// SetLineWidth implements Canvas.
func (c *PixmapCanvas) SetLineWidth(w float64) {
	c.lineWidth = w
	c.dc.SetLineWidth(w)
	c.glowDC.SetLineWidth(w)
}

// SetGlow implements Canvas. Changing the glow resolves the glow of the
// draws made under the previous setting.
func (c *PixmapCanvas) SetGlow(radius float64, col gg.RGBA) {
	if radius != c.glow.Radius || col != c.glow.Color {
		c.Flush()
	}
	c.glow.Radius = radius
	c.glow.Color = col
}

// StrokeLine implements Canvas.
func (c *PixmapCanvas) StrokeLine(x1, y1, x2, y2 float64) {
	c.draw(func(dc *gg.Context) error {
		dc.DrawLine(x1, y1, x2, y2)
		return dc.Stroke()
	})
}

// StrokeCircle implements Canvas.
func (c *PixmapCanvas) StrokeCircle(x, y, r float64) {
	c.draw(func(dc *gg.Context) error {
		dc.DrawCircle(x, y, r)
		return dc.Stroke()
	})
}

// FillCircle implements Canvas.
func (c *PixmapCanvas) FillCircle(x, y, r float64) {
	c.draw(func(dc *gg.Context) error {
		dc.DrawCircle(x, y, r)
		return dc.Fill()
	})
}

func (c *PixmapCanvas) draw(op func(dc *gg.Context) error) {
	if err := op(c.dc); err != nil {
		Logger().Debug("overlay draw failed", "err", err)
		return
	}
	if c.glow.Radius > 0 {
		if err := op(c.glowDC); err != nil {
			Logger().Debug("overlay glow draw failed", "err", err)
			return
		}
		c.pending = true
	}
}

// Flush composites any pending glow under the strokes.
func (c *PixmapCanvas) Flush() {
	if !c.pending {
		return
	}
	c.pending = false
	c.flushGPU()

	layer := c.glowDC.ResizeTarget()
	strokes := c.dc.ResizeTarget()

	// Glow the glowing strokes in their own layer, then put the
	// remaining strokes on top.
	c.glow.Apply(layer)
	glow.Over(layer, strokes)
	copy(strokes.Data(), layer.Data())
	strokes.NotifyPixelsChanged()
	c.glowDC.Clear()
}

// Pixmap flushes pending glow and returns the canvas pixels.
func (c *PixmapCanvas) Pixmap() *gg.Pixmap {
	c.Flush()
	c.flushGPU()
	return c.dc.ResizeTarget()
}

// flushGPU lands shapes queued by a batching GPU accelerator in the
// pixmaps before their pixels are read.
func (c *PixmapCanvas) flushGPU() {
	for _, dc := range []*gg.Context{c.dc, c.glowDC} {
		if err := dc.FlushGPU(); err != nil {
			Logger().Warn("overlay GPU flush failed", "err", err)
		}
	}
}
