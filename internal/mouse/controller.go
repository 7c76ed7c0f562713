// Package mouse translates gesture results into operating system pointer
// actions.
package mouse

import (
	"github.com/ayusman/skytouch/internal/config"
	"github.com/ayusman/skytouch/internal/gesture"
)

// Controller consumes one gesture result per frame and drives the pointer.
type Controller interface {
	// Apply performs the pointer actions for one frame's result.
	Apply(res gesture.Result) error
	// Reset drops movement state so the next frame starts a fresh baseline.
	Reset()
	// UpdateConfig replaces the cursor-mapping settings.
	UpdateConfig(cfg Config)
}

// Config holds the cursor-mapping settings.
type Config struct {
	// SmoothingFactor is the EMA weight given to the previous palm
	// position, in [0, 1). Zero disables smoothing.
	SmoothingFactor float64
	// Sensitivity multiplies the screen-ratio-derived movement scale.
	Sensitivity float64
	// ScrollAmount is the number of scroll steps per scroll event.
	ScrollAmount int
	// InvertX and InvertY flip the cursor axes on top of the already
	// mirrored palm coordinates.
	InvertX bool
	InvertY bool
	// CameraWidth and CameraHeight are the capture resolution used for
	// the automatic sensitivity scale.
	CameraWidth  int
	CameraHeight int
}

// ConfigFrom derives the controller settings from the application
// configuration.
func ConfigFrom(cfg config.Config) Config {
	return Config{
		SmoothingFactor: cfg.Gesture.SmoothingFactor,
		Sensitivity:     cfg.Gesture.Sensitivity,
		ScrollAmount:    cfg.Gesture.ScrollAmount,
		InvertX:         cfg.Gesture.InvertX,
		InvertY:         cfg.Gesture.InvertY,
		CameraWidth:     cfg.Camera.Width,
		CameraHeight:    cfg.Camera.Height,
	}
}

// scrollSteps converts a scroll direction into horizontal and vertical step
// counts for the OS scroll call. Screen convention: positive y scrolls down.
func scrollSteps(dir gesture.Direction, amount int) (x, y int) {
	switch dir {
	case gesture.DirectionUp:
		return 0, amount
	case gesture.DirectionDown:
		return 0, -amount
	case gesture.DirectionLeft:
		return -amount, 0
	case gesture.DirectionRight:
		return amount, 0
	}
	return 0, 0
}

// swipeKey maps a swipe direction to the built-in desktop-switch hotkey.
// Left and right walk the virtual desktops, up opens the window overview and
// down returns from it.
func swipeKey(dir gesture.Direction) (key string, ok bool) {
	switch dir {
	case gesture.DirectionLeft:
		return "left", true
	case gesture.DirectionRight:
		return "right", true
	case gesture.DirectionUp:
		return "up", true
	case gesture.DirectionDown:
		return "down", true
	}
	return "", false
}

// clamp bounds v to [0, max-1].
func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v >= max {
		return max - 1
	}
	return v
}
