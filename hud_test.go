package aura

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestHUDMeter(t *testing.T) {
	h, err := NewHUD(0)
	if err != nil {
		t.Fatalf("NewHUD: %v", err)
	}
	if h.size != DefaultHUDSize {
		t.Errorf("size = %v, want default %v", h.size, DefaultHUDSize)
	}

	dc := gg.NewContext(400, 300)
	h.Draw(dc, 0.5, DefaultPalette())
	pm := dc.ResizeTarget()

	x, y, w, hh := h.MeterRect(400, 300)
	cy := int(y + hh/2)

	filled := pm.GetPixel(int(x+w/4), cy)
	want := DefaultPalette().Body(0.5).WithAlpha(1)
	if !rgbaApproxEqual(filled, want, 2.0/255) {
		t.Errorf("filled meter = %+v, want %+v", filled, want)
	}

	track := pm.GetPixel(int(x+w*3/4), cy)
	if track.A <= 0 || track.A >= 0.5 {
		t.Errorf("empty track alpha = %v, want translucent", track.A)
	}

	if corner := pm.GetPixel(399, 0); corner.A != 0 {
		t.Errorf("corner alpha = %v, want untouched", corner.A)
	}
}
