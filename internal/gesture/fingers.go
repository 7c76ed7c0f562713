package gesture

import "github.com/ayusman/skytouch/internal/detector"

// FingerState holds the per-frame extended flags for the four non-thumb
// fingers. A finger counts as extended when its tip sits above its MCP
// knuckle by more than the finger threshold (smaller y = higher on frame).
// The heuristic assumes a roughly upright hand pose.
type FingerState struct {
	IndexExtended  bool `json:"index_extended"`
	MiddleExtended bool `json:"middle_extended"`
	RingExtended   bool `json:"ring_extended"`
	PinkyExtended  bool `json:"pinky_extended"`
}

// ThumbDistance holds the per-frame distances from the thumb tip to the
// index and middle fingertips, in normalized landmark space.
type ThumbDistance struct {
	ThumbIndex  float64 `json:"thumb_index_distance"`
	ThumbMiddle float64 `json:"thumb_middle_distance"`
}

// ExtractFingerState derives the extended flags from a landmark set.
func ExtractFingerState(h *detector.HandLandmarks, fingerThreshold float64) FingerState {
	extended := func(tip, mcp int) bool {
		return h.Points[tip].Y < h.Points[mcp].Y-fingerThreshold
	}

	return FingerState{
		IndexExtended:  extended(detector.IndexTip, detector.IndexMCP),
		MiddleExtended: extended(detector.MiddleTip, detector.MiddleMCP),
		RingExtended:   extended(detector.RingTip, detector.RingMCP),
		PinkyExtended:  extended(detector.PinkyTip, detector.PinkyMCP),
	}
}

// ExtractThumbDistance derives the thumb-to-fingertip distances from a
// landmark set.
func ExtractThumbDistance(h *detector.HandLandmarks) ThumbDistance {
	thumb := h.Points[detector.ThumbTip]
	return ThumbDistance{
		ThumbIndex:  Distance(thumb, h.Points[detector.IndexTip]),
		ThumbMiddle: Distance(thumb, h.Points[detector.MiddleTip]),
	}
}
