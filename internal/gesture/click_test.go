package gesture

import (
	"testing"
	"time"
)

// fakeClock is a controllable time source for detector tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

const testDoubleWindow = 500 * time.Millisecond

func thumbIndex(dist float64) ThumbDistance {
	return ThumbDistance{ThumbIndex: dist, ThumbMiddle: 0.4}
}

func thumbMiddle(dist float64) ThumbDistance {
	return ThumbDistance{ThumbIndex: 0.4, ThumbMiddle: dist}
}

func TestClick_FiresOnReleaseEdge(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	// Apart, touch, touch, release. Only the release edge fires.
	seq := []float64{0.2, 0.05, 0.05, 0.2}
	for i, dist := range seq {
		ev := d.Update(thumbIndex(dist), clock.Now(), testClickThreshold, testDoubleWindow)
		wantClick := i == len(seq)-1
		if ev.Click != wantClick {
			t.Errorf("frame %d (dist %f): Click = %v, want %v", i, dist, ev.Click, wantClick)
		}
		if ev.RightClick || ev.DoubleClick {
			t.Errorf("frame %d: unexpected right/double click", i)
		}
		clock.Advance(33 * time.Millisecond)
	}

	// Staying apart fires nothing further.
	if ev := d.Update(thumbIndex(0.2), clock.Now(), testClickThreshold, testDoubleWindow); ev.Click {
		t.Error("no second click without a new touch")
	}
}

func TestClick_DoubleClick(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	tap := func() clickEvents {
		d.Update(thumbIndex(0.05), clock.Now(), testClickThreshold, testDoubleWindow)
		clock.Advance(50 * time.Millisecond)
		return d.Update(thumbIndex(0.2), clock.Now(), testClickThreshold, testDoubleWindow)
	}

	ev := tap()
	if !ev.Click || ev.DoubleClick {
		t.Fatalf("first tap: got %+v, want single click", ev)
	}

	clock.Advance(100 * time.Millisecond)
	ev = tap()
	if !ev.Click || !ev.DoubleClick {
		t.Fatalf("second tap inside window: got %+v, want double click", ev)
	}

	// The double click consumed the count; an immediate third tap is a
	// plain click again.
	clock.Advance(100 * time.Millisecond)
	ev = tap()
	if !ev.Click || ev.DoubleClick {
		t.Fatalf("third tap: got %+v, want single click", ev)
	}
}

func TestClick_DoubleClickWindowExpires(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	tap := func() clickEvents {
		d.Update(thumbIndex(0.05), clock.Now(), testClickThreshold, testDoubleWindow)
		clock.Advance(50 * time.Millisecond)
		return d.Update(thumbIndex(0.2), clock.Now(), testClickThreshold, testDoubleWindow)
	}

	tap()
	clock.Advance(testDoubleWindow + 50*time.Millisecond)
	if ev := tap(); ev.DoubleClick {
		t.Error("tap after the window expired should not double click")
	}
}

func TestClick_RightClickIndependent(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	d.Update(thumbMiddle(0.05), clock.Now(), testClickThreshold, testDoubleWindow)
	clock.Advance(50 * time.Millisecond)
	ev := d.Update(thumbMiddle(0.2), clock.Now(), testClickThreshold, testDoubleWindow)
	if !ev.RightClick {
		t.Error("thumb-middle release should right click")
	}
	if ev.Click || ev.DoubleClick {
		t.Errorf("right click leaked into left click events: %+v", ev)
	}
}

func TestClick_ResetDisarmsWithoutFiring(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	d.Update(thumbIndex(0.05), clock.Now(), testClickThreshold, testDoubleWindow)
	d.Reset()
	clock.Advance(50 * time.Millisecond)

	// The touch was discarded by the reset, so the apart frame is not a
	// release edge.
	if ev := d.Update(thumbIndex(0.2), clock.Now(), testClickThreshold, testDoubleWindow); ev.Click {
		t.Error("reset should discard the pending touch")
	}
}

func TestClick_DoubleClickSurvivesReset(t *testing.T) {
	var d clickDetector
	clock := newFakeClock()

	tap := func() clickEvents {
		d.Update(thumbIndex(0.05), clock.Now(), testClickThreshold, testDoubleWindow)
		clock.Advance(50 * time.Millisecond)
		return d.Update(thumbIndex(0.2), clock.Now(), testClickThreshold, testDoubleWindow)
	}

	tap()

	// A brief mode flicker between taps resets the detector but keeps the
	// double-click timing.
	d.Reset()
	clock.Advance(100 * time.Millisecond)

	if ev := tap(); !ev.DoubleClick {
		t.Error("second tap inside window should double click despite reset")
	}
}
