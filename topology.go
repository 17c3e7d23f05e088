package aura

// Connection is a pair of landmark indices joined by a line.
type Connection [2]int

// PoseConnections is the full pose connector graph.
var PoseConnections = []Connection{
	{0, 1}, {1, 2}, {2, 3}, {3, 7}, {0, 4}, {4, 5}, {5, 6}, {6, 8},
	{9, 10},
	{11, 12}, {11, 13}, {13, 15}, {15, 17}, {15, 19}, {15, 21}, {17, 19},
	{12, 14}, {14, 16}, {16, 18}, {16, 20}, {16, 22}, {18, 20},
	{11, 23}, {12, 24}, {23, 24},
	{23, 25}, {24, 26}, {25, 27}, {26, 28}, {27, 29}, {28, 30},
	{29, 31}, {30, 32}, {27, 31}, {28, 32},
}

// PoseArmConnections joins the shoulders and both arms down to the wrists.
var PoseArmConnections = []Connection{
	{PoseLeftShoulder, PoseLeftElbow},
	{PoseLeftElbow, PoseLeftWrist},
	{PoseRightShoulder, PoseRightElbow},
	{PoseRightElbow, PoseRightWrist},
	{PoseLeftShoulder, PoseRightShoulder},
}

// PoseArmMarkers are the joints marked when only the arms are drawn.
var PoseArmMarkers = []int{
	PoseLeftShoulder, PoseRightShoulder,
	PoseLeftElbow, PoseRightElbow,
	PoseLeftWrist, PoseRightWrist,
}

// HandConnections is the 21-point hand connector graph.
var HandConnections = []Connection{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 5}, {5, 6}, {6, 7}, {7, 8},
	{5, 9}, {9, 10}, {10, 11}, {11, 12},
	{9, 13}, {13, 14}, {14, 15}, {15, 16},
	{13, 17}, {0, 17}, {17, 18}, {18, 19}, {19, 20},
}

// FaceConnections outlines the face mesh: oval, lips, eyes and eyebrows.
var FaceConnections = joinConnections(
	loop(10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288, 397, 365,
		379, 378, 400, 377, 152, 148, 176, 149, 150, 136, 172, 58, 132, 93,
		234, 127, 162, 21, 54, 103, 67, 109),
	// lips
	polyline(61, 146, 91, 181, 84, 17, 314, 405, 321, 375, 291),
	polyline(61, 185, 40, 39, 37, 0, 267, 269, 270, 409, 291),
	polyline(78, 95, 88, 178, 87, 14, 317, 402, 318, 324, 308),
	polyline(78, 191, 80, 81, 82, 13, 312, 311, 310, 415, 308),
	// left eye and eyebrow
	polyline(263, 249, 390, 373, 374, 380, 381, 382, 362),
	polyline(263, 466, 388, 387, 386, 385, 384, 398, 362),
	polyline(276, 283, 282, 295, 285),
	polyline(300, 293, 334, 296, 336),
	// right eye and eyebrow
	polyline(33, 7, 163, 144, 145, 153, 154, 155, 133),
	polyline(33, 246, 161, 160, 159, 158, 157, 173, 133),
	polyline(46, 53, 52, 65, 55),
	polyline(70, 63, 105, 66, 107),
)

// PoseTopology selects which pose connectors the overlay draws.
type PoseTopology int

const (
	// PoseFull draws the complete pose graph and marks every joint.
	PoseFull PoseTopology = iota

	// PoseArms draws only the shoulders and arms.
	PoseArms
)

// String returns the topology name.
func (t PoseTopology) String() string {
	switch t {
	case PoseFull:
		return "full"
	case PoseArms:
		return "arms"
	default:
		return "unknown"
	}
}

// ParsePoseTopology parses "full" or "arms".
func ParsePoseTopology(s string) (PoseTopology, bool) {
	switch s {
	case "full":
		return PoseFull, true
	case "arms":
		return PoseArms, true
	default:
		return PoseFull, false
	}
}

func polyline(indices ...int) []Connection {
	if len(indices) < 2 {
		return nil
	}
	out := make([]Connection, 0, len(indices)-1)
	for i := 1; i < len(indices); i++ {
		out = append(out, Connection{indices[i-1], indices[i]})
	}
	return out
}

func loop(indices ...int) []Connection {
	out := polyline(indices...)
	if len(indices) > 2 {
		out = append(out, Connection{indices[len(indices)-1], indices[0]})
	}
	return out
}

func joinConnections(sets ...[]Connection) []Connection {
	var n int
	for _, s := range sets {
		n += len(s)
	}
	out := make([]Connection, 0, n)
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}
