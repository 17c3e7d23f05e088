package aura

// Option configures a Renderer during creation.
//
// Example:
//
//	// Stock look
//	r, _ := aura.NewRenderer(640, 480)
//
//	// Arms-only skeleton with a fixed head and a HUD
//	r, _ := aura.NewRenderer(640, 480,
//		aura.WithPoseTopology(aura.PoseArms),
//		aura.WithHeadRadius(32),
//		aura.WithHUD(true),
//	)
type Option func(*options)

type options struct {
	palette    Palette
	gain       float64
	blurRadius float64
	overlay    OverlayConfig
	hud        bool
	shaderSrc  string
}

func defaultOptions() options {
	return options{
		palette:    DefaultPalette(),
		gain:       DefaultGain,
		blurRadius: DefaultBlurRadius,
		overlay:    DefaultOverlayConfig(),
	}
}

// WithPalette sets the initial color parameters.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithGain sets the audio level gain. Non-positive values select
// DefaultGain.
func WithGain(gain float64) Option {
	return func(o *options) {
		o.gain = gain
	}
}

// WithBlurRadius sets the mask blur grid spacing in texels.
func WithBlurRadius(r float64) Option {
	return func(o *options) {
		o.blurRadius = r
	}
}

// WithHead sets how the head disc is placed and sized.
func WithHead(h HeadConfig) Option {
	return func(o *options) {
		o.overlay.Head = h
	}
}

// WithHeadRadius draws the head disc with a fixed radius in pixels
// instead of deriving it from the eye span.
func WithHeadRadius(r float64) Option {
	return func(o *options) {
		o.overlay.Head.Mode = HeadFixed
		o.overlay.Head.Radius = r
	}
}

// WithPoseTopology selects which pose connectors and markers are drawn.
func WithPoseTopology(t PoseTopology) Option {
	return func(o *options) {
		o.overlay.Topology = t
	}
}

// WithGlowRadius sets the skeleton glow radius. Zero disables the glow.
func WithGlowRadius(r float64) Option {
	return func(o *options) {
		o.overlay.GlowRadius = r
	}
}

// WithOverlay replaces the whole overlay configuration.
func WithOverlay(cfg OverlayConfig) Option {
	return func(o *options) {
		o.overlay = cfg
	}
}

// WithHUD enables the level readout drawn on the composite.
func WithHUD(enabled bool) Option {
	return func(o *options) {
		o.hud = enabled
	}
}

// WithShader compiles the given WGSL aura shader when the renderer is
// created. A source that fails to compile makes NewRenderer fail.
//
// Example:
//
//	r, err := aura.NewRenderer(640, 480, aura.WithShader(shader.Aura()))
func WithShader(src string) Option {
	return func(o *options) {
		o.shaderSrc = src
	}
}
