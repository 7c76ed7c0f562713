package gesture

import (
	"time"

	"github.com/ayusman/skytouch/internal/detector"
)

// swipeDetector turns palm movement into directional swipe events while
// swipe mode is active. It runs the same directional-run algorithm as the
// scroll detector with two differences: a refractory cooldown gates new
// detections after a fire, and a fire keeps the reference palm so the next
// swipe measures incrementally from the same baseline with no rearm gap.
type swipeDetector struct {
	refPalm        *detector.Point3D
	runBuf         []Direction
	lastSwipeTime  time.Time
	cooldownActive bool
}

// Update advances the detector by one frame and reports a completed swipe,
// if any. While the cooldown is active nothing is processed, not even the
// reference palm update; the cooldown flag clears once the configured
// duration has elapsed.
func (d *swipeDetector) Update(palm detector.Point3D, now time.Time, cfg Config) (Direction, bool) {
	if d.cooldownActive {
		if now.Sub(d.lastSwipeTime) < cfg.SwipeCooldown {
			return DirectionNone, false
		}
		d.cooldownActive = false
	}

	if d.refPalm == nil {
		ref := palm
		d.refPalm = &ref
		d.runBuf = d.runBuf[:0]
		return DirectionNone, false
	}

	dx := palm.X - d.refPalm.X
	dy := palm.Y - d.refPalm.Y
	if cfg.InvertSwipeX {
		dx = -dx
	}
	if cfg.InvertSwipeY {
		dy = -dy
	}

	dir := MovementDirection(dx, dy, cfg.SwipeDistanceThreshold)
	if dir == DirectionNone {
		d.runBuf = d.runBuf[:0]
		return DirectionNone, false
	}

	d.runBuf = appendRun(d.runBuf, dir, cfg.SwipeRequiredFrames)
	if runComplete(d.runBuf, cfg.SwipeRequiredFrames) {
		d.lastSwipeTime = now
		d.cooldownActive = true
		d.runBuf = d.runBuf[:0]
		return dir, true
	}

	ref := palm
	d.refPalm = &ref
	return DirectionNone, false
}

// Reset clears the reference palm and run buffer. The cooldown clock is kept
// so leaving and re-entering swipe mode cannot bypass the refractory period.
func (d *swipeDetector) Reset() {
	d.refPalm = nil
	d.runBuf = d.runBuf[:0]
}
