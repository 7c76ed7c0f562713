package gesture

import "time"

// Config holds the gesture-recognition thresholds and timing windows. Values
// are trusted as-is: range validation is the configuration layer's job, and
// the core neither clamps nor rejects out-of-range numbers.
type Config struct {
	// FingerThreshold is the tip-above-knuckle margin for a finger to count
	// as extended, in normalized landmark space.
	FingerThreshold float64

	// ClickThreshold is the thumb-to-fingertip distance below which a touch
	// pair reads as touching.
	ClickThreshold float64

	// DoubleClickWindow is the maximum gap between two left clicks for the
	// second to count as a double click.
	DoubleClickWindow time.Duration

	// ScrollDistanceThreshold is the minimum per-frame palm delta for a
	// scroll direction; ScrollRequiredFrames consecutive identical
	// directions fire a scroll.
	ScrollDistanceThreshold float64
	ScrollRequiredFrames    int
	InvertScrollX           bool
	InvertScrollY           bool

	// SwipeDistanceThreshold and SwipeRequiredFrames mirror the scroll
	// settings; SwipeCooldown is the refractory period after a fired swipe.
	SwipeDistanceThreshold float64
	SwipeRequiredFrames    int
	SwipeCooldown          time.Duration
	InvertSwipeX           bool
	InvertSwipeY           bool
}

// DefaultConfig returns the stock trackpad tuning.
func DefaultConfig() Config {
	return Config{
		FingerThreshold:         0.02,
		ClickThreshold:          0.12,
		DoubleClickWindow:       500 * time.Millisecond,
		ScrollDistanceThreshold: 0.003,
		ScrollRequiredFrames:    1,
		InvertScrollX:           true,
		InvertScrollY:           false,
		SwipeDistanceThreshold:  0.008,
		SwipeRequiredFrames:     3,
		SwipeCooldown:           500 * time.Millisecond,
		InvertSwipeX:            true,
		InvertSwipeY:            false,
	}
}
