package aura

import "github.com/go-gl/mathgl/mgl64"

// HeadMode selects how the head disc radius is computed.
type HeadMode int

const (
	// HeadEyeSpan scales the radius with the distance between the eyes,
	// so the disc follows the subject toward and away from the camera.
	HeadEyeSpan HeadMode = iota

	// HeadFixed always uses HeadConfig.Radius.
	HeadFixed
)

// String returns the mode name.
func (m HeadMode) String() string {
	switch m {
	case HeadEyeSpan:
		return "eyes"
	case HeadFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseHeadMode parses "eyes" or "fixed".
func ParseHeadMode(s string) (HeadMode, bool) {
	switch s {
	case "eyes":
		return HeadEyeSpan, true
	case "fixed":
		return HeadFixed, true
	default:
		return HeadEyeSpan, false
	}
}

// HeadConfig configures the head disc.
type HeadConfig struct {
	Mode HeadMode

	// Radius is the fixed radius in pixels, and the fallback radius in
	// eye-span mode when the eyes are missing.
	Radius float64

	// EyeSpanScale multiplies the inter-eye distance in eye-span mode.
	EyeSpanScale float64
}

// DefaultHeadConfig returns eye-span mode with a 40px fallback.
func DefaultHeadConfig() HeadConfig {
	return HeadConfig{
		Mode:         HeadEyeSpan,
		Radius:       40,
		EyeSpanScale: 0.75,
	}
}

// Rig is the stylized skeleton derived from a pose, in surface pixels.
type Rig struct {
	Shoulder   mgl64.Vec2 // shoulder midpoint
	Hip        mgl64.Vec2 // hip midpoint
	Head       mgl64.Vec2 // head disc center
	HeadRadius float64
}

// Spine returns the spine segment from shoulder midpoint to hip midpoint.
func (r Rig) Spine() (from, to mgl64.Vec2) {
	return r.Shoulder, r.Hip
}

// Neck returns the neck segment from the shoulder midpoint to the bottom
// of the head disc.
func (r Rig) Neck() (from, to mgl64.Vec2) {
	return r.Shoulder, mgl64.Vec2{r.Head.X(), r.Head.Y() + r.HeadRadius}
}

// ComputeRig derives the rig of res on a width x height surface.
// It reports false when the pose lacks the shoulders, hips or nose.
//
// The head center is the face mesh nose tip when a face set is present
// and the pose nose otherwise.
func ComputeRig(res Result, width, height int, head HeadConfig) (Rig, bool) {
	pose := res.Pose
	if !pose.Has(PoseNose, PoseLeftShoulder, PoseRightShoulder, PoseLeftHip, PoseRightHip) {
		return Rig{}, false
	}

	r := Rig{
		Shoulder: midpoint(pose[PoseLeftShoulder], pose[PoseRightShoulder], width, height),
		Hip:      midpoint(pose[PoseLeftHip], pose[PoseRightHip], width, height),
		Head:     pose[PoseNose].Pixel(width, height),
	}
	if res.Face.Has(FaceNoseTip) {
		r.Head = res.Face[FaceNoseTip].Pixel(width, height)
	}

	r.HeadRadius = head.Radius
	if head.Mode == HeadEyeSpan && pose.Has(PoseLeftEye, PoseRightEye) {
		left := pose[PoseLeftEye].Pixel(width, height)
		right := pose[PoseRightEye].Pixel(width, height)
		r.HeadRadius = right.Sub(left).Len() * head.EyeSpanScale
	}

	return r, true
}

// midpoint scales the normalized midpoint of a and b to pixels.
func midpoint(a, b Landmark, width, height int) mgl64.Vec2 {
	return mgl64.Vec2{
		(a.X + b.X) / 2 * float64(width),
		(a.Y + b.Y) / 2 * float64(height),
	}
}
