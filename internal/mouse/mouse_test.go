package mouse

import (
	"testing"

	"github.com/ayusman/skytouch/internal/config"
	"github.com/ayusman/skytouch/internal/gesture"
)

func TestConfigFrom(t *testing.T) {
	cfg := config.Default()
	got := ConfigFrom(cfg)

	if got.SmoothingFactor != 0.5 || got.Sensitivity != 1.5 || got.ScrollAmount != 5 {
		t.Errorf("unexpected mapping settings: %+v", got)
	}
	if got.CameraWidth != 480 || got.CameraHeight != 360 {
		t.Errorf("camera dimensions = %dx%d, want 480x360", got.CameraWidth, got.CameraHeight)
	}
}

func TestScrollSteps(t *testing.T) {
	tests := []struct {
		dir          gesture.Direction
		wantX, wantY int
	}{
		{gesture.DirectionUp, 0, 5},
		{gesture.DirectionDown, 0, -5},
		{gesture.DirectionLeft, -5, 0},
		{gesture.DirectionRight, 5, 0},
		{gesture.DirectionNone, 0, 0},
	}

	for _, tt := range tests {
		x, y := scrollSteps(tt.dir, 5)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("scrollSteps(%q) = (%d, %d), want (%d, %d)", tt.dir, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestSwipeKey(t *testing.T) {
	for _, dir := range []gesture.Direction{
		gesture.DirectionLeft, gesture.DirectionRight,
		gesture.DirectionUp, gesture.DirectionDown,
	} {
		if _, ok := swipeKey(dir); !ok {
			t.Errorf("swipeKey(%q) not mapped", dir)
		}
	}
	if _, ok := swipeKey(gesture.DirectionNone); ok {
		t.Error("swipeKey(none) should not be mapped")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, max, want int
	}{
		{-5, 1920, 0},
		{0, 1920, 0},
		{960, 1920, 960},
		{1920, 1920, 1919},
		{5000, 1920, 1919},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.max); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.v, tt.max, got, tt.want)
		}
	}
}

func TestSmooth(t *testing.T) {
	// factor 0 follows the current value exactly
	if got := smooth(0.2, 0.6, 0); got != 0.6 {
		t.Errorf("smooth(factor 0) = %f, want 0.6", got)
	}
	// factor 0.5 lands halfway
	if got := smooth(0.2, 0.6, 0.5); got != 0.4 {
		t.Errorf("smooth(factor 0.5) = %f, want 0.4", got)
	}
}

func TestMockController(t *testing.T) {
	m := NewMockController()

	res := gesture.Result{Mode: gesture.ModeMove}
	if err := m.Apply(res); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if got := m.Applied(); len(got) != 1 || got[0].Mode != gesture.ModeMove {
		t.Errorf("Applied() = %+v", got)
	}

	m.Reset()
	m.Reset()
	if m.Resets() != 2 {
		t.Errorf("Resets() = %d, want 2", m.Resets())
	}

	m.UpdateConfig(Config{Sensitivity: 2.0})
	if m.Config().Sensitivity != 2.0 {
		t.Errorf("Config() = %+v", m.Config())
	}
}
