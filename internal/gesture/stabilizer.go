package gesture

import "time"

// historySize bounds the rolling mode history consulted by the stabilizer.
const historySize = 3

// modeRecord is one frame's entry in the rolling mode history.
type modeRecord struct {
	mode    Mode
	at      time.Time
	fingers FingerState
}

// modeStabilizer tracks the committed gesture mode and a short rolling
// history of stabilized frames.
//
// Contract: mode switching is immediate. The frame on which the classified
// mode differs from the committed mode clears the history and commits the new
// mode with zero latency; the history only serves to re-confirm that a mode
// is holding steady across recent frames. Scroll never consults the history
// at all, since the scroll detector's directional-run buffer provides its own
// debouncing.
type modeStabilizer struct {
	committed Mode
	history   []modeRecord
}

func newModeStabilizer() modeStabilizer {
	return modeStabilizer{
		committed: ModeClick,
		history:   make([]modeRecord, 0, historySize),
	}
}

// Stabilize commits the classified mode for this frame and returns it.
func (s *modeStabilizer) Stabilize(mode Mode, now time.Time, fingers FingerState) Mode {
	if mode != s.committed {
		s.history = s.history[:0]
		s.committed = mode
	}

	s.push(modeRecord{mode: mode, at: now, fingers: fingers})
	return mode
}

// Confirmed reports whether the committed mode has held for a full history
// window. Scroll is always considered confirmed.
func (s *modeStabilizer) Confirmed() bool {
	if s.committed == ModeScroll {
		return true
	}
	if len(s.history) < historySize {
		return false
	}
	for _, rec := range s.history {
		if rec.mode != s.committed {
			return false
		}
	}
	return true
}

func (s *modeStabilizer) push(rec modeRecord) {
	if len(s.history) >= historySize {
		copy(s.history, s.history[1:])
		s.history = s.history[:historySize-1]
	}
	s.history = append(s.history, rec)
}
