package aura

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD draws a level meter and readout in the bottom-left corner of a
// surface.
type HUD struct {
	face   text.Face
	size   float64
	margin float64
}

// DefaultHUDSize is the readout font size in points.
const DefaultHUDSize = 14

// NewHUD creates a HUD using the Go Regular font at the given size.
func NewHUD(size float64) (*HUD, error) {
	if size <= 0 {
		size = DefaultHUDSize
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("aura: hud font: %w", err)
	}
	return &HUD{
		face:   source.Face(size),
		size:   size,
		margin: 12,
	}, nil
}

// MeterRect returns the meter track on a width x height surface.
func (h *HUD) MeterRect(width, height int) (x, y, w, hh float64) {
	w = float64(width) / 4
	hh = h.size / 2
	x = h.margin
	y = float64(height) - h.margin - hh
	return x, y, w, hh
}

// Draw draws the meter filled to level in the palette body color, and
// the numeric level above it.
func (h *HUD) Draw(dc *gg.Context, level float64, p Palette) {
	x, y, w, hh := h.MeterRect(dc.Width(), dc.Height())

	dc.SetRGBA(1, 1, 1, 0.25)
	dc.DrawRectangle(x, y, w, hh)
	if err := dc.Fill(); err != nil {
		Logger().Debug("hud meter track failed", "err", err)
	}

	if level > 0 {
		body := p.Body(level)
		dc.SetRGBA(body.R, body.G, body.B, 1)
		dc.DrawRectangle(x, y, w*level, hh)
		if err := dc.Fill(); err != nil {
			Logger().Debug("hud meter fill failed", "err", err)
		}
	}

	dc.SetFont(h.face)
	dc.SetRGBA(1, 1, 1, 0.9)
	dc.DrawString(fmt.Sprintf("level %.2f", level), x, y-h.size/2)
}
