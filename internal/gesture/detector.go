package gesture

import (
	"errors"
	"time"

	"github.com/ayusman/skytouch/internal/detector"
)

// ErrNoHand is returned when Detect is called without a hand.
var ErrNoHand = errors.New("gesture: nil hand landmarks")

// Result is the immutable per-frame output of the gesture detector. The
// boolean action fields are edge-triggered: true for exactly one frame per
// physical event. PalmCenter is mirrored on X so a mirrored camera feed
// produces natural on-screen movement; everything else is computed in
// camera-native coordinates.
type Result struct {
	PalmCenter      detector.Point3D `json:"palm_center"`
	Mode            Mode             `json:"gesture_mode"`
	IsClicking      bool             `json:"is_clicking"`
	IsRightClicking bool             `json:"is_right_clicking"`
	IsDoubleClick   bool             `json:"is_double_clicking"`
	IsScrolling     bool             `json:"is_scrolling"`
	IsSwiping       bool             `json:"is_swiping"`
	ScrollDirection Direction        `json:"scroll_direction"`
	SwipeDirection  Direction        `json:"swipe_direction"`
	Handedness      string           `json:"handedness"`
	Score           float64          `json:"score"`
}

// Detector is the per-frame gesture recognition state machine. It owns all
// mutable detection state; construct one instance per hand-tracking session.
// A Detector is not safe for concurrent use; the expected caller is a
// single frame loop.
type Detector struct {
	config     Config
	now        func() time.Time
	stabilizer modeStabilizer
	click      clickDetector
	scroll     scrollDetector
	swipe      swipeDetector
}

// NewDetector creates a gesture detector with the given configuration.
func NewDetector(cfg Config) *Detector {
	return &Detector{
		config:     cfg,
		now:        time.Now,
		stabilizer: newModeStabilizer(),
	}
}

// UpdateConfig replaces the configuration. Takes effect on the next
// processed frame; no state is discarded.
func (d *Detector) UpdateConfig(cfg Config) {
	d.config = cfg
}

// Config returns the active configuration.
func (d *Detector) Config() Config {
	return d.config
}

// SetClock overrides the time source, for tests. time.Now carries a
// monotonic reading, so the default is immune to wall-clock adjustments.
func (d *Detector) SetClock(now func() time.Time) {
	d.now = now
}

// Detect processes one frame of hand landmarks and returns the gesture
// result. Only the detector matching the stabilized mode runs; the others
// are reset so their state is clean whenever their mode becomes active
// again.
func (d *Detector) Detect(hand *detector.HandLandmarks) (Result, error) {
	if hand == nil {
		return Result{}, ErrNoHand
	}

	now := d.now()
	palm := hand.PalmCenter()

	fingers := ExtractFingerState(hand, d.config.FingerThreshold)
	thumb := ExtractThumbDistance(hand)

	mode := ClassifyMode(fingers, thumb, d.config.ClickThreshold)
	mode = d.stabilizer.Stabilize(mode, now, fingers)

	res := Result{
		// X mirrored here and only here; detectors above saw raw coordinates.
		PalmCenter:      detector.Point3D{X: 1.0 - palm.X, Y: palm.Y, Z: palm.Z},
		Mode:            mode,
		ScrollDirection: DirectionNone,
		SwipeDirection:  DirectionNone,
		Handedness:      hand.Handedness,
		Score:           hand.Score,
	}

	if mode != ModeClick {
		d.click.Reset()
	}
	if mode != ModeScroll {
		d.scroll.Reset()
	}
	if mode != ModeSwipe {
		d.swipe.Reset()
	}

	switch mode {
	case ModeClick:
		ev := d.click.Update(thumb, now, d.config.ClickThreshold, d.config.DoubleClickWindow)
		res.IsClicking = ev.Click
		res.IsRightClicking = ev.RightClick
		res.IsDoubleClick = ev.DoubleClick

	case ModeScroll:
		if dir, ok := d.scroll.Update(palm, d.config); ok {
			res.IsScrolling = true
			res.ScrollDirection = dir
		}

	case ModeSwipe:
		if dir, ok := d.swipe.Update(palm, now, d.config); ok {
			res.IsSwiping = true
			res.SwipeDirection = dir
		}
	}

	return res, nil
}
