package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Pose fixture geometry. The hand is upright with the wrist at the bottom of
// the frame; extended fingertips sit well above their MCP knuckles (smaller y)
// and curled fingertips sit just below them. The thumb rests to the side, far
// enough from the index and middle tips that no touch pair is engaged.
const (
	extendedTipRise = 0.25
	curledTipDrop   = 0.05
)

// handPose builds a full 21-point hand with the given fingers extended.
func handPose(index, middle, ring, pinky bool) HandLandmarks {
	lm := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	lm.Points[Wrist] = Point3D{X: 0.50, Y: 0.80}

	// Thumb resting to the side of the palm
	lm.Points[ThumbCMC] = Point3D{X: 0.58, Y: 0.75}
	lm.Points[ThumbMCP] = Point3D{X: 0.63, Y: 0.72}
	lm.Points[ThumbIP] = Point3D{X: 0.67, Y: 0.72}
	lm.Points[ThumbTip] = Point3D{X: 0.70, Y: 0.72}

	fingers := []struct {
		mcp      int
		x, mcpY  float64
		extended bool
	}{
		{IndexMCP, 0.55, 0.62, index},
		{MiddleMCP, 0.50, 0.60, middle},
		{RingMCP, 0.45, 0.62, ring},
		{PinkyMCP, 0.40, 0.64, pinky},
	}

	for _, f := range fingers {
		lm.Points[f.mcp] = Point3D{X: f.x, Y: f.mcpY}
		if f.extended {
			lm.Points[f.mcp+1] = Point3D{X: f.x, Y: f.mcpY - extendedTipRise*0.36}
			lm.Points[f.mcp+2] = Point3D{X: f.x, Y: f.mcpY - extendedTipRise*0.68}
			lm.Points[f.mcp+3] = Point3D{X: f.x, Y: f.mcpY - extendedTipRise}
		} else {
			lm.Points[f.mcp+1] = Point3D{X: f.x, Y: f.mcpY - 0.02}
			lm.Points[f.mcp+2] = Point3D{X: f.x - 0.02, Y: f.mcpY + 0.02}
			lm.Points[f.mcp+3] = Point3D{X: f.x - 0.03, Y: f.mcpY + curledTipDrop}
		}
	}

	return lm
}

// PointingHand returns a hand with only the index finger extended
// (cursor movement pose).
func PointingHand() HandLandmarks {
	return handPose(true, false, false, false)
}

// TwoFingerHand returns a hand with index and middle fingers extended
// (scroll pose).
func TwoFingerHand() HandLandmarks {
	return handPose(true, true, false, false)
}

// FistHand returns a hand with all fingers curled (swipe pose).
func FistHand() HandLandmarks {
	return handPose(false, false, false, false)
}

// PinkyOutHand returns a hand with the pinky extended (click pose).
func PinkyOutHand() HandLandmarks {
	return handPose(false, false, false, true)
}

// Translate returns a copy of the hand shifted by (dx, dy). Shifting every
// landmark preserves finger-extension relationships, so a pose keeps its
// gesture mode while its palm center moves.
func Translate(h HandLandmarks, dx, dy float64) HandLandmarks {
	out := h
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}
