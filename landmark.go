package aura

import "github.com/go-gl/mathgl/mgl64"

// Landmark is a tracker keypoint. X and Y are normalized to [0, 1] of the
// input image; Z is relative depth and is ignored for drawing.
type Landmark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// Pixel scales the landmark to a surface of the given size.
func (l Landmark) Pixel(width, height int) mgl64.Vec2 {
	return mgl64.Vec2{l.X * float64(width), l.Y * float64(height)}
}

// Landmarks is an ordered landmark set. Indices follow the tracker's
// fixed topology for the set.
type Landmarks []Landmark

// Has reports whether every index is present in the set.
func (ls Landmarks) Has(indices ...int) bool {
	for _, i := range indices {
		if i < 0 || i >= len(ls) {
			return false
		}
	}
	return true
}

// Pose landmark indices.
const (
	PoseNose           = 0
	PoseLeftEyeInner   = 1
	PoseLeftEye        = 2
	PoseLeftEyeOuter   = 3
	PoseRightEyeInner  = 4
	PoseRightEye       = 5
	PoseRightEyeOuter  = 6
	PoseLeftEar        = 7
	PoseRightEar       = 8
	PoseMouthLeft      = 9
	PoseMouthRight     = 10
	PoseLeftShoulder   = 11
	PoseRightShoulder  = 12
	PoseLeftElbow      = 13
	PoseRightElbow     = 14
	PoseLeftWrist      = 15
	PoseRightWrist     = 16
	PoseLeftPinky      = 17
	PoseRightPinky     = 18
	PoseLeftIndex      = 19
	PoseRightIndex     = 20
	PoseLeftThumb      = 21
	PoseRightThumb     = 22
	PoseLeftHip        = 23
	PoseRightHip       = 24
	PoseLeftKnee       = 25
	PoseRightKnee      = 26
	PoseLeftAnkle      = 27
	PoseRightAnkle     = 28
	PoseLeftHeel       = 29
	PoseRightHeel      = 30
	PoseLeftFootIndex  = 31
	PoseRightFootIndex = 32

	// PoseCount is the number of landmarks in a full pose set.
	PoseCount = 33
)

// FaceNoseTip is the face mesh vertex at the tip of the nose.
const FaceNoseTip = 1

// HandCount is the number of landmarks per hand.
const HandCount = 21

// Result is one tracker result. Any set may be nil when the tracker did
// not detect it in the frame.
type Result struct {
	Pose      Landmarks `json:"pose,omitempty"`
	Face      Landmarks `json:"face,omitempty"`
	LeftHand  Landmarks `json:"leftHand,omitempty"`
	RightHand Landmarks `json:"rightHand,omitempty"`
}

// Empty reports whether the result carries no landmark set at all.
func (r Result) Empty() bool {
	return len(r.Pose) == 0 && len(r.Face) == 0 && len(r.LeftHand) == 0 && len(r.RightHand) == 0
}
