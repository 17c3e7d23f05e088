package aura

import "github.com/gogpu/gg"

// OverlayConfig configures the skeleton overlay.
type OverlayConfig struct {
	Head     HeadConfig
	Topology PoseTopology

	// GlowRadius is the blur radius of the glow under every stroke.
	GlowRadius float64

	// Alpha is the opacity of the skeleton color.
	Alpha float64

	SpineWidth   float64 // spine and neck
	LimbWidth    float64 // pose connectors
	HandWidth    float64 // hand connectors
	FaceWidth    float64 // face contours
	MarkerWidth  float64 // joint marker outline
	MarkerRadius float64
}

// DefaultOverlayConfig returns the stock overlay look.
func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		Head:         DefaultHeadConfig(),
		Topology:     PoseFull,
		GlowRadius:   20,
		Alpha:        0.55,
		SpineWidth:   8,
		LimbWidth:    8,
		HandWidth:    6,
		FaceWidth:    2,
		MarkerWidth:  4,
		MarkerRadius: 6,
	}
}

// Overlay draws the stylized skeleton and connector graphs of a tracker
// result. It holds no per-frame state.
type Overlay struct {
	cfg OverlayConfig
}

// NewOverlay creates an overlay with the given configuration.
func NewOverlay(cfg OverlayConfig) *Overlay {
	return &Overlay{cfg: cfg}
}

// Config returns the overlay configuration.
func (o *Overlay) Config() OverlayConfig {
	return o.cfg
}

// Draw clears c and draws res in color. Missing landmark sets are
// skipped; an empty result leaves the canvas cleared with no further
// calls.
func (o *Overlay) Draw(c Canvas, res Result, color RGB) {
	c.Clear()
	if res.Empty() {
		return
	}

	col := color.WithAlpha(o.cfg.Alpha)
	c.SetColor(col)
	c.SetGlow(o.cfg.GlowRadius, col)

	width, height := c.Size()

	if rig, ok := ComputeRig(res, width, height, o.cfg.Head); ok {
		o.drawRig(c, rig)
	}

	if len(res.Pose) > 0 {
		connections, markers := PoseConnections, []int(nil)
		if o.cfg.Topology == PoseArms {
			connections, markers = PoseArmConnections, PoseArmMarkers
		}
		c.SetLineWidth(o.cfg.LimbWidth)
		drawConnectors(c, res.Pose, connections, width, height)
		o.drawMarkers(c, res.Pose, markers, width, height)
	}

	if len(res.Face) > 0 {
		c.SetLineWidth(o.cfg.FaceWidth)
		drawConnectors(c, res.Face, FaceConnections, width, height)
	}

	for _, hand := range []Landmarks{res.LeftHand, res.RightHand} {
		if len(hand) == 0 {
			continue
		}
		c.SetLineWidth(o.cfg.HandWidth)
		drawConnectors(c, hand, HandConnections, width, height)
		o.drawMarkers(c, hand, nil, width, height)
	}

	c.SetGlow(0, gg.Transparent)
}

func (o *Overlay) drawRig(c Canvas, rig Rig) {
	c.SetLineWidth(o.cfg.SpineWidth)

	from, to := rig.Spine()
	c.StrokeLine(from.X(), from.Y(), to.X(), to.Y())

	if rig.HeadRadius > 0 {
		c.FillCircle(rig.Head.X(), rig.Head.Y(), rig.HeadRadius)
	}

	from, to = rig.Neck()
	c.StrokeLine(from.X(), from.Y(), to.X(), to.Y())
}

// drawMarkers marks the listed joints of ls, or every joint when indices
// is nil.
func (o *Overlay) drawMarkers(c Canvas, ls Landmarks, indices []int, width, height int) {
	c.SetLineWidth(o.cfg.MarkerWidth)
	mark := func(l Landmark) {
		p := l.Pixel(width, height)
		c.FillCircle(p.X(), p.Y(), o.cfg.MarkerRadius)
		c.StrokeCircle(p.X(), p.Y(), o.cfg.MarkerRadius)
	}

	if indices == nil {
		for _, l := range ls {
			mark(l)
		}
		return
	}
	for _, i := range indices {
		if ls.Has(i) {
			mark(ls[i])
		}
	}
}

// drawConnectors strokes every connection whose endpoints exist in ls.
func drawConnectors(c Canvas, ls Landmarks, connections []Connection, width, height int) {
	for _, conn := range connections {
		if !ls.Has(conn[0], conn[1]) {
			continue
		}
		a := ls[conn[0]].Pixel(width, height)
		b := ls[conn[1]].Pixel(width, height)
		c.StrokeLine(a.X(), a.Y(), b.X(), b.Y())
	}
}
