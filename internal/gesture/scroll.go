package gesture

import "github.com/ayusman/skytouch/internal/detector"

// scrollDetector turns palm movement into directional scroll events while
// scroll mode is active. A scroll fires once the same direction has been seen
// on N consecutive frames; the run buffer is the only debouncing scroll mode
// has.
type scrollDetector struct {
	refPalm *detector.Point3D
	runBuf  []Direction
}

// Update advances the detector by one frame and reports a completed scroll,
// if any.
//
// The reference palm is re-captured at the end of every non-firing frame that
// produced a direction, so deltas measure frame-to-frame velocity rather than
// displacement from scroll-mode entry. A below-threshold frame drops the
// partial run but deliberately keeps the baseline, letting slow drift
// accumulate into a direction.
func (d *scrollDetector) Update(palm detector.Point3D, cfg Config) (Direction, bool) {
	if d.refPalm == nil {
		ref := palm
		d.refPalm = &ref
		d.runBuf = d.runBuf[:0]
		return DirectionNone, false
	}

	dx := palm.X - d.refPalm.X
	dy := palm.Y - d.refPalm.Y
	if cfg.InvertScrollX {
		dx = -dx
	}
	if cfg.InvertScrollY {
		dy = -dy
	}

	dir := MovementDirection(dx, dy, cfg.ScrollDistanceThreshold)
	if dir == DirectionNone {
		d.runBuf = d.runBuf[:0]
		return DirectionNone, false
	}

	d.runBuf = appendRun(d.runBuf, dir, cfg.ScrollRequiredFrames)
	if runComplete(d.runBuf, cfg.ScrollRequiredFrames) {
		// Full reset: the next frame re-arms with a fresh baseline.
		d.Reset()
		return dir, true
	}

	ref := palm
	d.refPalm = &ref
	return DirectionNone, false
}

// Reset clears the reference palm and run buffer. Safe to call on every
// frame in which scroll mode is inactive.
func (d *scrollDetector) Reset() {
	d.refPalm = nil
	d.runBuf = d.runBuf[:0]
}

// appendRun appends a direction to a run buffer, evicting the oldest entry
// so the buffer never exceeds the required frame count.
func appendRun(buf []Direction, dir Direction, required int) []Direction {
	buf = append(buf, dir)
	if len(buf) > required {
		copy(buf, buf[1:])
		buf = buf[:required]
	}
	return buf
}

// runComplete reports whether the buffer holds a full run of one direction.
func runComplete(buf []Direction, required int) bool {
	if len(buf) != required {
		return false
	}
	for _, dir := range buf {
		if dir != buf[0] {
			return false
		}
	}
	return true
}
