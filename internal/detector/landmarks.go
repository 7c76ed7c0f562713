// Package detector provides hand detection interfaces and types for the
// SkyTouch hand trackpad.
package detector

import "fmt"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a 3D point in normalized image space. X and Y are in
// [0,1] relative to the frame; Z is relative depth and may leave that range.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
// The middle finger MCP (index 9) doubles as the palm center.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// FromPoints builds HandLandmarks from a point slice, enforcing the 21-point
// contract. A wrong-sized slice is a caller bug, not a condition to recover
// from: guessing at missing anatomy would produce wrong cursor actions.
func FromPoints(points []Point3D, handedness string, score float64) (HandLandmarks, error) {
	if len(points) != NumLandmarks {
		return HandLandmarks{}, fmt.Errorf("hand landmarks: expected %d points, got %d", NumLandmarks, len(points))
	}

	lm := HandLandmarks{
		Handedness: handedness,
		Score:      score,
	}
	copy(lm.Points[:], points)
	return lm, nil
}

// PalmCenter returns the middle finger MCP landmark, the single-point proxy
// for overall hand position.
func (h *HandLandmarks) PalmCenter() Point3D {
	return h.Points[MiddleMCP]
}
