package gesture

import "time"

// clickEvents carries the edge-triggered click outputs for one frame.
type clickEvents struct {
	Click       bool
	RightClick  bool
	DoubleClick bool
}

// clickDetector tracks the thumb-index and thumb-middle touch pairs while
// click mode is active. Each pair is a two-state machine (apart/touching);
// the event fires on the release edge, mirroring a physical button-up.
type clickDetector struct {
	thumbIndexTouching  bool
	thumbMiddleTouching bool
	lastClickTime       time.Time
	clickCount          int
}

// Update advances both touch pairs by one frame.
//
// A left click fires when the thumb-index pair transitions from touching to
// apart. Two left clicks within doubleWindow make the second one a double
// click. The thumb-middle pair fires a right click on its own release edge;
// there is no double right click.
func (d *clickDetector) Update(td ThumbDistance, now time.Time, clickThreshold float64, doubleWindow time.Duration) clickEvents {
	var ev clickEvents

	if td.ThumbIndex < clickThreshold {
		d.thumbIndexTouching = true
	} else {
		if d.thumbIndexTouching {
			ev.Click = true

			if now.Sub(d.lastClickTime) < doubleWindow {
				d.clickCount++
				if d.clickCount >= 2 {
					ev.DoubleClick = true
					d.clickCount = 0
				}
			} else {
				d.clickCount = 1
			}
			d.lastClickTime = now
		}
		d.thumbIndexTouching = false
	}

	if td.ThumbMiddle < clickThreshold {
		d.thumbMiddleTouching = true
	} else {
		if d.thumbMiddleTouching {
			ev.RightClick = true
		}
		d.thumbMiddleTouching = false
	}

	return ev
}

// Reset disarms both touch pairs without firing. Safe to call on every frame
// in which click mode is inactive. The double-click timing survives a reset
// so a brief mode flicker between taps does not eat the second tap.
func (d *clickDetector) Reset() {
	d.thumbIndexTouching = false
	d.thumbMiddleTouching = false
}
