package aura

import "testing"

func TestConnectionIndicesInRange(t *testing.T) {
	tests := []struct {
		name        string
		connections []Connection
		size        int
		want        int
	}{
		{"pose", PoseConnections, PoseCount, 35},
		{"pose arms", PoseArmConnections, PoseCount, 5},
		{"hand", HandConnections, HandCount, 21},
		{"face", FaceConnections, 468, 124},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.connections) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.connections), tt.want)
			}
			for _, c := range tt.connections {
				if c[0] < 0 || c[0] >= tt.size || c[1] < 0 || c[1] >= tt.size {
					t.Errorf("connection %v out of range [0, %d)", c, tt.size)
				}
				if c[0] == c[1] {
					t.Errorf("connection %v joins a landmark to itself", c)
				}
			}
		})
	}
}

func TestPolylineAndLoop(t *testing.T) {
	if got := polyline(1); got != nil {
		t.Errorf("polyline(1) = %v, want nil", got)
	}
	if got := polyline(1, 2, 3); len(got) != 2 || got[1] != (Connection{2, 3}) {
		t.Errorf("polyline(1, 2, 3) = %v", got)
	}
	got := loop(1, 2, 3)
	if len(got) != 3 || got[2] != (Connection{3, 1}) {
		t.Errorf("loop(1, 2, 3) = %v, want closing edge {3 1}", got)
	}
}

func TestParsePoseTopology(t *testing.T) {
	tests := []struct {
		in   string
		want PoseTopology
		ok   bool
	}{
		{"full", PoseFull, true},
		{"arms", PoseArms, true},
		{"legs", PoseFull, false},
	}
	for _, tt := range tests {
		got, ok := ParsePoseTopology(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePoseTopology(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}
