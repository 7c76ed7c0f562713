package gesture

// Mode is the closed set of trackpad gesture modes. Exactly one mode is
// active per processed frame.
type Mode string

const (
	// ModeMove permits cursor translation from palm deltas.
	ModeMove Mode = "move"
	// ModeClick arms the thumb-touch click detectors.
	ModeClick Mode = "click"
	// ModeScroll arms the directional scroll detector.
	ModeScroll Mode = "scroll"
	// ModeSwipe arms the directional swipe detector.
	ModeSwipe Mode = "swipe"
)

// ClassifyMode maps a finger/thumb snapshot to a gesture mode using
// priority-ordered rules; the first match wins.
//
//  1. Pinky extended: click mode, regardless of the other fingers. (Of the
//     two surveyed entry rules, this module uses the plain pinky flag; it
//     does not require ring+pinky or an actual thumb touch.)
//  2. No finger extended (fist): swipe mode.
//  3. Index and middle extended, ring and pinky curled: scroll mode, unless
//     the middle fingertip has curled close enough to the thumb to read as a
//     touch, in which case click mode.
//  4. Index extended alone: move mode.
//  5. Anything else: click mode.
func ClassifyMode(fs FingerState, td ThumbDistance, clickThreshold float64) Mode {
	switch {
	case fs.PinkyExtended:
		return ModeClick

	case !fs.IndexExtended && !fs.MiddleExtended && !fs.RingExtended && !fs.PinkyExtended:
		return ModeSwipe

	case fs.IndexExtended && fs.MiddleExtended && !fs.RingExtended && !fs.PinkyExtended:
		if td.ThumbMiddle > clickThreshold {
			return ModeScroll
		}
		return ModeClick

	case fs.IndexExtended && !fs.MiddleExtended && !fs.RingExtended && !fs.PinkyExtended:
		return ModeMove

	default:
		return ModeClick
	}
}
