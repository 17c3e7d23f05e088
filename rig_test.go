package aura

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// testPose returns a full pose with shoulders at (0.4,0.3)/(0.6,0.3),
// hips at (0.45,0.6)/(0.55,0.6), nose at (0.5,0.15) and eyes 0.05 apart.
func testPose() Landmarks {
	pose := make(Landmarks, PoseCount)
	for i := range pose {
		pose[i] = Landmark{X: 0.5, Y: 0.5}
	}
	pose[PoseNose] = Landmark{X: 0.5, Y: 0.15}
	pose[PoseLeftEye] = Landmark{X: 0.475, Y: 0.125}
	pose[PoseRightEye] = Landmark{X: 0.525, Y: 0.125}
	pose[PoseLeftShoulder] = Landmark{X: 0.4, Y: 0.3}
	pose[PoseRightShoulder] = Landmark{X: 0.6, Y: 0.3}
	pose[PoseLeftHip] = Landmark{X: 0.45, Y: 0.6}
	pose[PoseRightHip] = Landmark{X: 0.55, Y: 0.6}
	return pose
}

func vecApproxEqual(a, b mgl64.Vec2) bool {
	return math.Abs(a.X()-b.X()) < 1e-9 && math.Abs(a.Y()-b.Y()) < 1e-9
}

func TestComputeRigSpine(t *testing.T) {
	rig, ok := ComputeRig(Result{Pose: testPose()}, 640, 480, DefaultHeadConfig())
	if !ok {
		t.Fatal("ComputeRig() ok = false, want true")
	}

	from, to := rig.Spine()
	if want := (mgl64.Vec2{320, 144}); !vecApproxEqual(from, want) {
		t.Errorf("spine start = %v, want %v", from, want)
	}
	if want := (mgl64.Vec2{320, 288}); !vecApproxEqual(to, want) {
		t.Errorf("spine end = %v, want %v", to, want)
	}
}

func TestComputeRigHead(t *testing.T) {
	tests := []struct {
		name       string
		res        Result
		head       HeadConfig
		wantCenter mgl64.Vec2
		wantRadius float64
	}{
		{
			name:       "eye span",
			res:        Result{Pose: testPose()},
			head:       DefaultHeadConfig(),
			wantCenter: mgl64.Vec2{320, 72},
			wantRadius: 32 * 0.75,
		},
		{
			name:       "fixed",
			res:        Result{Pose: testPose()},
			head:       HeadConfig{Mode: HeadFixed, Radius: 55, EyeSpanScale: 0.75},
			wantCenter: mgl64.Vec2{320, 72},
			wantRadius: 55,
		},
		{
			name: "face nose tip",
			res: Result{
				Pose: testPose(),
				Face: Landmarks{{X: 0, Y: 0}, {X: 0.25, Y: 0.25}},
			},
			head:       HeadConfig{Mode: HeadFixed, Radius: 40},
			wantCenter: mgl64.Vec2{160, 120},
			wantRadius: 40,
		},
		{
			name: "face without nose tip falls back to pose nose",
			res: Result{
				Pose: testPose(),
				Face: Landmarks{{X: 0, Y: 0}},
			},
			head:       HeadConfig{Mode: HeadFixed, Radius: 40},
			wantCenter: mgl64.Vec2{320, 72},
			wantRadius: 40,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rig, ok := ComputeRig(tt.res, 640, 480, tt.head)
			if !ok {
				t.Fatal("ComputeRig() ok = false")
			}
			if !vecApproxEqual(rig.Head, tt.wantCenter) {
				t.Errorf("Head = %v, want %v", rig.Head, tt.wantCenter)
			}
			if math.Abs(rig.HeadRadius-tt.wantRadius) > 1e-9 {
				t.Errorf("HeadRadius = %v, want %v", rig.HeadRadius, tt.wantRadius)
			}
		})
	}
}

func TestComputeRigNeck(t *testing.T) {
	head := HeadConfig{Mode: HeadFixed, Radius: 30}
	rig, _ := ComputeRig(Result{Pose: testPose()}, 640, 480, head)

	from, to := rig.Neck()
	if !vecApproxEqual(from, rig.Shoulder) {
		t.Errorf("neck start = %v, want shoulder midpoint %v", from, rig.Shoulder)
	}
	if want := (mgl64.Vec2{320, 102}); !vecApproxEqual(to, want) {
		t.Errorf("neck end = %v, want %v", to, want)
	}
}

func TestComputeRigIncompletePose(t *testing.T) {
	tests := []struct {
		name string
		res  Result
	}{
		{"no pose", Result{}},
		{"hands only", Result{LeftHand: make(Landmarks, HandCount)}},
		{"pose without hips", Result{Pose: testPose()[:PoseLeftHip]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ComputeRig(tt.res, 640, 480, DefaultHeadConfig()); ok {
				t.Error("ComputeRig() ok = true, want false")
			}
		})
	}
}

func TestParseHeadMode(t *testing.T) {
	for _, m := range []HeadMode{HeadEyeSpan, HeadFixed} {
		got, ok := ParseHeadMode(m.String())
		if !ok || got != m {
			t.Errorf("ParseHeadMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseHeadMode("round"); ok {
		t.Error("ParseHeadMode(round) ok = true")
	}
}
