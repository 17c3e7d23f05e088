package aura

import (
	"fmt"
	"image"
	"sync/atomic"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/gg-aura/internal/glow"
	"github.com/gogpu/gg-aura/shader"
)

// Frame holds the inputs of one render pass.
type Frame struct {
	// Video is the camera image. The aura is drawn from the mask alone;
	// Video is carried for sinks that show it.
	Video image.Image

	// Mask is the greyscale segmentation mask. Masks of another size
	// are scaled to the surface.
	Mask image.Image

	// Result holds the landmark sets found in the frame.
	Result Result

	// Time is the frame time in seconds since the session started.
	Time float64

	// Bins is the byte frequency data captured for this frame. Nil
	// keeps the previous level.
	Bins []uint8
}

// Layers are the rendered surfaces of a frame. The pixmaps are owned by
// the Renderer and overwritten by the next Render call.
type Layers struct {
	// Aura is the shader layer.
	Aura *gg.Pixmap

	// Overlay is the transparent skeleton layer.
	Overlay *gg.Pixmap

	// Composite is Overlay stacked on Aura, with the HUD if enabled.
	Composite *gg.Pixmap

	// Uniforms are the compositor inputs the frame was rendered with.
	Uniforms Uniforms
}

// Renderer runs the per-frame pipeline: level sampling, color
// interpolation, mask compositing and the skeleton overlay.
//
// Render, UpdateLevel and Level must be called from one goroutine.
// SetPalette, SetColor and Palette may be called from any goroutine; a
// render pass reads one palette snapshot.
type Renderer struct {
	width, height int

	palette atomic.Pointer[Palette]
	sampler *LevelSampler

	compositor *Compositor
	overlay    *Overlay
	canvas     *PixmapCanvas

	hud   *HUD
	hudDC *gg.Context

	module []uint32
	layers Layers
}

// NewRenderer creates a renderer for a width x height surface.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	comp, err := NewCompositor(width, height)
	if err != nil {
		return nil, err
	}
	comp.SetBlurRadius(o.blurRadius)

	r := &Renderer{
		width:      width,
		height:     height,
		sampler:    NewLevelSampler(o.gain),
		compositor: comp,
		overlay:    NewOverlay(o.overlay),
		canvas:     NewPixmapCanvas(width, height),
	}
	palette := o.palette
	r.palette.Store(&palette)

	r.layers.Aura = gg.NewPixmap(width, height)
	r.layers.Composite = gg.NewPixmap(width, height)

	if o.hud {
		r.hud, err = NewHUD(DefaultHUDSize)
		if err != nil {
			return nil, err
		}
		r.hudDC = gg.NewContext(width, height, gg.WithPixmap(r.layers.Composite))
	}

	if o.shaderSrc != "" {
		r.module, err = shader.Compile(o.shaderSrc)
		if err != nil {
			return nil, fmt.Errorf("aura: aura shader: %w", err)
		}
	}

	Logger().Debug("aura renderer created",
		"width", width, "height", height,
		"topology", o.overlay.Topology, "hud", o.hud)
	return r, nil
}

// Size returns the surface size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Palette returns the current color parameters.
func (r *Renderer) Palette() Palette {
	return *r.palette.Load()
}

// SetPalette replaces all color parameters.
func (r *Renderer) SetPalette(p Palette) {
	r.palette.Store(&p)
}

// SetColor sets one color parameter from a "#rrggbb" string. The palette
// is unchanged on error.
func (r *Renderer) SetColor(name ColorName, hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	for {
		old := r.palette.Load()
		p, err := old.With(name, c)
		if err != nil {
			return err
		}
		if r.palette.CompareAndSwap(old, &p) {
			return nil
		}
	}
}

// UpdateLevel samples byte frequency data into the audio level. An empty
// buffer keeps the current level.
func (r *Renderer) UpdateLevel(bins []uint8) float64 {
	return r.sampler.Sample(bins)
}

// Level returns the current audio level.
func (r *Renderer) Level() float64 {
	return r.sampler.Level()
}

// ShaderModule returns the SPIR-V of the aura shader, or nil when the
// renderer was created without WithShader.
func (r *Renderer) ShaderModule() []uint32 {
	return r.module
}

// UniformBlock packs the uniforms of the last rendered frame for the
// aura shader.
func (r *Renderer) UniformBlock() []byte {
	u := r.layers.Uniforms
	return shader.Uniforms{
		Body:       [3]float32{float32(u.Body.R), float32(u.Body.G), float32(u.Body.B)},
		Level:      float32(u.Level),
		Background: [3]float32{float32(u.Background.R), float32(u.Background.G), float32(u.Background.B)},
		Time:       float32(u.Time),
		Resolution: [2]float32{float32(r.width), float32(r.height)},
		BlurRadius: float32(r.compositor.blurRadius),
	}.Bytes()
}

// Render runs one pass over f and returns the rendered layers.
func (r *Renderer) Render(f Frame) (*Layers, error) {
	if f.Mask == nil {
		return nil, ErrNoMask
	}
	if f.Mask.Bounds().Empty() {
		return nil, ErrInvalidSize
	}
	start := time.Now()

	if len(f.Bins) > 0 {
		r.sampler.Sample(f.Bins)
	}
	level := r.sampler.Level()
	p := r.Palette()

	u := Uniforms{
		Level:      level,
		Time:       f.Time,
		Body:       p.Body(level),
		Background: p.Background(level),
	}

	r.compositor.UploadMask(f.Mask)
	r.compositor.Composite(r.layers.Aura, u)

	r.overlay.Draw(r.canvas, f.Result, u.Body)
	r.layers.Overlay = r.canvas.Pixmap()

	copy(r.layers.Composite.Data(), r.layers.Aura.Data())
	r.layers.Composite.NotifyPixelsChanged()
	glow.Over(r.layers.Composite, r.layers.Overlay)

	if r.hud != nil {
		r.hud.Draw(r.hudDC, level, p)
		if err := r.hudDC.FlushGPU(); err != nil {
			Logger().Warn("hud GPU flush failed", "err", err)
		}
	}

	r.layers.Uniforms = u
	Logger().Debug("aura frame rendered", "level", level, "elapsed", time.Since(start))
	return &r.layers, nil
}
