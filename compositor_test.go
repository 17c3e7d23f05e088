package aura

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func testUniforms() Uniforms {
	return Uniforms{
		Level:      0.5,
		Body:       RGB{0.2, 0.4, 0.6},
		Background: RGB{0.1, 0.0, 0.3},
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{-1, 0},
		{0.1, 0},
		{0.3, 0.5},
		{0.5, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(0.1, 0.5, tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Smoothstep(0.1, 0.5, %v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestEdgeTermsMonotonic(t *testing.T) {
	prevSoft, prevGlow, prevHalo := EdgeTerms(0)
	for i := 1; i <= 1000; i++ {
		m := float64(i) / 1000
		soft, glow, halo := EdgeTerms(m)
		if soft < prevSoft || glow < prevGlow || halo < prevHalo {
			t.Fatalf("EdgeTerms decreased at m=%v", m)
		}
		prevSoft, prevGlow, prevHalo = soft, glow, halo
	}
}

func TestEdgeTermsSaturate(t *testing.T) {
	tests := []struct {
		name                     string
		m                        float64
		wantSoft, wantGlow, want float64
	}{
		{"zero", 0, 0, 0, 0},
		{"below soft and glow domains", 0.1, 0, 0, 1},
		{"above soft domain", 0.5, 1, Smoothstep(0.1, 0.9, 0.5), 1},
		{"full", 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			soft, glow, halo := EdgeTerms(tt.m)
			if soft != tt.wantSoft || glow != tt.wantGlow || halo != tt.want {
				t.Errorf("EdgeTerms(%v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.m, soft, glow, halo, tt.wantSoft, tt.wantGlow, tt.want)
			}
		})
	}
}

func TestShadeBackgroundBoundary(t *testing.T) {
	u := testUniforms()
	bg := u.Background.WithAlpha(1)

	for _, m := range []float64{0, 0.01, math.Nextafter(BackgroundThreshold, 0)} {
		if got := Shade(m, u); got != bg {
			t.Errorf("Shade(%v) = %+v, want background %+v", m, got, bg)
		}
	}

	for _, m := range []float64{BackgroundThreshold, 0.06, 0.5, 1} {
		got := Shade(m, u)
		soft, _, _ := EdgeTerms(m)
		if got.A != soft {
			t.Errorf("Shade(%v).A = %v, want soft edge %v", m, got.A, soft)
		}
		if got == bg {
			t.Errorf("Shade(%v) took the background branch", m)
		}
	}
}

func TestShadeForeground(t *testing.T) {
	u := testUniforms()
	got := Shade(1, u)

	// aura = AuraOuter, glow = AuraOuter + HaloColor*0.5
	glow := RGB{1.0 + 0.5, 0.1 + 0.25, 0.6 + 0.5}
	want := glow.Lerp(u.Body, BodyMix).WithAlpha(1)
	if !rgbaApproxEqual(got, want, 1e-12) {
		t.Errorf("Shade(1) = %+v, want %+v", got, want)
	}
}

func TestCompositorInvalidSize(t *testing.T) {
	if _, err := NewCompositor(0, 480); err == nil {
		t.Error("NewCompositor(0, 480) should fail")
	}
}

func TestCompositorUniformZeroMask(t *testing.T) {
	c, err := NewCompositor(64, 48)
	if err != nil {
		t.Fatal(err)
	}
	c.UploadMask(uniformMask(64, 48, 0))

	u := testUniforms()
	dst := gg.NewPixmap(64, 48)
	c.Composite(dst, u)

	want := u.Background.WithAlpha(1)
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			got := dst.GetPixel(x, y)
			if got.A != 1 || !rgbaApproxEqual(got, want, 1.0/255) {
				t.Fatalf("pixel (%d,%d) = %+v, want background %+v", x, y, got, want)
			}
		}
	}
}

func TestCompositorUniformFullMask(t *testing.T) {
	c, _ := NewCompositor(32, 24)
	c.UploadMask(uniformMask(32, 24, 255))

	u := testUniforms()
	dst := gg.NewPixmap(32, 24)
	c.Composite(dst, u)

	want := Shade(1, u)
	if got := dst.GetPixel(10, 10); !rgbaApproxEqual(got, want, 1.0/255) {
		t.Errorf("pixel = %+v, want %+v", got, want)
	}
}

func TestCompositorHalfMask(t *testing.T) {
	const w, h = 64, 32
	mask := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}

	c, _ := NewCompositor(w, h)
	c.UploadMask(mask)
	dst := gg.NewPixmap(w, h)
	u := testUniforms()
	c.Composite(dst, u)

	if got := dst.GetPixel(5, 16); got.A != 1 || rgbaApproxEqual(got, u.Background.WithAlpha(1), 1.0/255) {
		t.Errorf("inside pixel = %+v, want opaque aura", got)
	}
	if got := dst.GetPixel(60, 16); !rgbaApproxEqual(got, u.Background.WithAlpha(1), 1.0/255) {
		t.Errorf("outside pixel = %+v, want background", got)
	}

	// The edge is feathered by the blur.
	edge := c.BlurredMask((float64(w/2)+0.5)/w, 0.5)
	if edge <= 0 || edge >= 1 {
		t.Errorf("blurred mask at the edge = %v, want in (0, 1)", edge)
	}
}

func TestCompositorSampleMask(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 2, 1))
	mask.SetGray(0, 0, color.Gray{Y: 0})
	mask.SetGray(1, 0, color.Gray{Y: 255})

	c, _ := NewCompositor(2, 1)
	c.UploadMask(mask)

	tests := []struct {
		u, want float64
	}{
		{0.25, 0},  // first texel center
		{0.75, 1},  // second texel center
		{0.5, 0.5}, // halfway
		{-1, 0},    // clamped left
		{2, 1},     // clamped right
	}
	for _, tt := range tests {
		if got := c.SampleMask(tt.u, 0.5); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("SampleMask(%v) = %v, want %v", tt.u, got, tt.want)
		}
	}
}

func TestCompositorUploadScaledMask(t *testing.T) {
	c, _ := NewCompositor(64, 48)
	c.UploadMask(uniformMask(16, 12, 255))

	if got := c.SampleMask(0.5, 0.5); math.Abs(got-1) > 1e-6 {
		t.Errorf("scaled mask sample = %v, want 1", got)
	}
	if got := c.BlurredMask(0.01, 0.01); math.Abs(got-1) > 1e-6 {
		t.Errorf("blurred corner sample = %v, want 1", got)
	}
}

func TestCompositorFeatheredPixel(t *testing.T) {
	c, _ := NewCompositor(16, 16)
	c.SetBlurRadius(0)
	c.UploadMask(uniformMask(16, 16, 77))

	u := testUniforms()
	dst := gg.NewPixmap(16, 16)
	c.Composite(dst, u)

	m := c.SampleMask(0.5, 0.5)
	want := Shade(m, u)
	if want.A <= 0.1 || want.A >= 0.9 {
		t.Fatalf("Shade(%v).A = %v, want a feathered alpha", m, want.A)
	}
	if got := dst.GetPixel(8, 8); !rgbaApproxEqual(got, want, 0.01) {
		t.Errorf("feathered pixel = %+v, want %+v", got, want)
	}
}

func TestToPixelPremultiplies(t *testing.T) {
	tests := []struct {
		name string
		in   gg.RGBA
		want [4]uint8
	}{
		{"opaque", gg.RGBA{R: 1, G: 0.5, B: 0, A: 1}, [4]uint8{255, 128, 0, 255}},
		{"half", gg.RGBA{R: 1, G: 0.5, B: 0, A: 0.5}, [4]uint8{128, 64, 0, 128}},
		{"color above one", gg.RGBA{R: 1.2, G: 0, B: 0, A: 0.5}, [4]uint8{128, 0, 0, 128}},
		{"transparent", gg.RGBA{R: 1, G: 1, B: 1, A: 0}, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toPixel(tt.in); got != tt.want {
				t.Errorf("toPixel(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
