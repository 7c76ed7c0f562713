package gesture

import (
	"math"
	"testing"
	"time"

	"github.com/ayusman/skytouch/internal/detector"
)

func newTestDetector() (*Detector, *fakeClock) {
	d := NewDetector(DefaultConfig())
	clock := newFakeClock()
	d.SetClock(clock.Now)
	return d, clock
}

func detect(t *testing.T, d *Detector, hand detector.HandLandmarks) Result {
	t.Helper()
	res, err := d.Detect(&hand)
	if err != nil {
		t.Fatalf("Detect() error: %v", err)
	}
	return res
}

func TestDetect_NilHand(t *testing.T) {
	d, _ := newTestDetector()
	if _, err := d.Detect(nil); err != ErrNoHand {
		t.Errorf("Detect(nil) error = %v, want ErrNoHand", err)
	}
}

func TestDetect_ModePerPose(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Mode
	}{
		{"pointing", detector.PointingHand(), ModeMove},
		{"two finger", detector.TwoFingerHand(), ModeScroll},
		{"fist", detector.FistHand(), ModeSwipe},
		{"pinky out", detector.PinkyOutHand(), ModeClick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDetector()
			res := detect(t, d, tt.hand)
			if res.Mode != tt.want {
				t.Errorf("Mode = %q, want %q", res.Mode, tt.want)
			}
			// Holding a pose without motion or touch fires nothing.
			if res.IsClicking || res.IsRightClicking || res.IsDoubleClick ||
				res.IsScrolling || res.IsSwiping {
				t.Errorf("idle pose fired events: %+v", res)
			}
			if res.ScrollDirection != DirectionNone || res.SwipeDirection != DirectionNone {
				t.Errorf("idle pose reported directions: %+v", res)
			}
		})
	}
}

func TestDetect_PalmCenterMirrored(t *testing.T) {
	d, _ := newTestDetector()

	hand := detector.Translate(detector.PointingHand(), -0.20, 0)
	res := detect(t, d, hand)

	// Raw palm X 0.30 appears as 0.70 in the result.
	if math.Abs(res.PalmCenter.X-0.70) > 1e-9 {
		t.Errorf("PalmCenter.X = %f, want 0.70", res.PalmCenter.X)
	}
	if math.Abs(res.PalmCenter.Y-0.60) > 1e-9 {
		t.Errorf("PalmCenter.Y = %f, want 0.60", res.PalmCenter.Y)
	}
}

func TestDetect_HandMetadataPassedThrough(t *testing.T) {
	d, _ := newTestDetector()
	hand := detector.PointingHand()
	hand.Handedness = "Left"
	hand.Score = 0.87

	res := detect(t, d, hand)
	if res.Handedness != "Left" || res.Score != 0.87 {
		t.Errorf("metadata = (%q, %f), want (Left, 0.87)", res.Handedness, res.Score)
	}
}

func TestDetect_Scroll(t *testing.T) {
	d, clock := newTestDetector()

	base := detector.TwoFingerHand()
	detect(t, d, base) // reference frame
	clock.Advance(33 * time.Millisecond)

	// Default tuning fires on a single directional frame. Downward palm
	// motion with no Y inversion scrolls down.
	res := detect(t, d, detector.Translate(base, 0, 0.01))
	if !res.IsScrolling || res.ScrollDirection != DirectionDown {
		t.Errorf("got (%v, %q), want (true, down)", res.IsScrolling, res.ScrollDirection)
	}
	if res.Mode != ModeScroll {
		t.Errorf("Mode = %q, want %q", res.Mode, ModeScroll)
	}

	// The fire re-armed the detector; the immediate next frame is a fresh
	// reference capture.
	res = detect(t, d, detector.Translate(base, 0, 0.02))
	if res.IsScrolling {
		t.Error("re-arm frame should not scroll")
	}
}

func TestDetect_ScrollHorizontalInverted(t *testing.T) {
	d, clock := newTestDetector()

	base := detector.TwoFingerHand()
	detect(t, d, base)
	clock.Advance(33 * time.Millisecond)

	// Default config inverts scroll X, so rightward palm motion scrolls
	// left.
	res := detect(t, d, detector.Translate(base, 0.01, 0))
	if !res.IsScrolling || res.ScrollDirection != DirectionLeft {
		t.Errorf("got (%v, %q), want (true, left)", res.IsScrolling, res.ScrollDirection)
	}
}

// clickPose is a click-mode hand with the index finger raised so the
// thumb-index and thumb-middle touch pairs sit far apart and can be
// engaged independently.
func clickPose() detector.HandLandmarks {
	h := detector.PinkyOutHand()
	mcp := h.Points[detector.IndexMCP]
	h.Points[detector.IndexTip] = detector.Point3D{X: mcp.X, Y: mcp.Y - 0.25}
	return h
}

func TestDetect_ClickReleaseEdge(t *testing.T) {
	d, clock := newTestDetector()

	apart := clickPose()
	touching := apart
	touching.Points[detector.ThumbTip] = touching.Points[detector.IndexTip]

	res := detect(t, d, apart)
	if res.Mode != ModeClick || res.IsClicking {
		t.Fatalf("apart frame: %+v", res)
	}
	clock.Advance(33 * time.Millisecond)

	res = detect(t, d, touching)
	if res.IsClicking {
		t.Error("touch frame should not click")
	}
	clock.Advance(33 * time.Millisecond)

	res = detect(t, d, apart)
	if !res.IsClicking {
		t.Error("release frame should click")
	}
	if res.IsDoubleClick {
		t.Error("first click should not be a double click")
	}
}

func TestDetect_DoubleClick(t *testing.T) {
	d, clock := newTestDetector()

	apart := clickPose()
	touching := apart
	touching.Points[detector.ThumbTip] = touching.Points[detector.IndexTip]

	tap := func() Result {
		detect(t, d, touching)
		clock.Advance(50 * time.Millisecond)
		res := detect(t, d, apart)
		clock.Advance(50 * time.Millisecond)
		return res
	}

	if res := tap(); !res.IsClicking || res.IsDoubleClick {
		t.Fatalf("first tap: %+v", res)
	}
	if res := tap(); !res.IsClicking || !res.IsDoubleClick {
		t.Fatalf("second tap inside window: %+v", res)
	}
}

func TestDetect_RightClick(t *testing.T) {
	d, clock := newTestDetector()

	apart := clickPose()
	touching := apart
	touching.Points[detector.ThumbTip] = touching.Points[detector.MiddleTip]

	detect(t, d, apart)
	clock.Advance(33 * time.Millisecond)
	detect(t, d, touching)
	clock.Advance(33 * time.Millisecond)

	res := detect(t, d, apart)
	if !res.IsRightClicking {
		t.Error("thumb-middle release should right click")
	}
	if res.IsClicking {
		t.Error("right click leaked into left click")
	}
}

func TestDetect_Swipe(t *testing.T) {
	d, clock := newTestDetector()

	base := detector.FistHand()
	dy := 0.0
	fire := func() (Result, bool) {
		// Reference frame plus the required directional run.
		for i := 0; i < 4; i++ {
			res := detect(t, d, detector.Translate(base, 0, dy))
			clock.Advance(33 * time.Millisecond)
			if res.IsSwiping {
				return res, true
			}
			dy += 0.01
		}
		return Result{}, false
	}

	res, ok := fire()
	if !ok || res.SwipeDirection != DirectionDown {
		t.Fatalf("got (%v, %+v), want downward swipe", ok, res)
	}
	if res.Mode != ModeSwipe {
		t.Errorf("Mode = %q, want %q", res.Mode, ModeSwipe)
	}

	// Cooldown gates an immediate second swipe.
	if _, ok := fire(); ok {
		t.Fatal("swipe fired inside cooldown")
	}

	clock.Advance(600 * time.Millisecond)
	if _, ok := fire(); !ok {
		t.Error("no swipe after cooldown elapsed")
	}
}

func TestDetect_ModeSwitchResetsScroll(t *testing.T) {
	d, clock := newTestDetector()

	scrollHand := detector.TwoFingerHand()
	detect(t, d, scrollHand)
	clock.Advance(33 * time.Millisecond)

	// A fist frame forces swipe mode, which resets the scroll detector.
	detect(t, d, detector.FistHand())
	clock.Advance(33 * time.Millisecond)

	// Back in scroll mode the first frame only re-captures the reference,
	// even with a large displacement.
	res := detect(t, d, detector.Translate(scrollHand, 0, 0.05))
	if res.IsScrolling {
		t.Error("first scroll frame after a mode switch should not fire")
	}
}

func TestDetect_UpdateConfig(t *testing.T) {
	d, _ := newTestDetector()

	cfg := d.Config()
	cfg.ClickThreshold = 0.2
	d.UpdateConfig(cfg)

	if got := d.Config().ClickThreshold; got != 0.2 {
		t.Errorf("ClickThreshold = %f, want 0.2", got)
	}
}
