// Package config defines the SkyTouch configuration surface and its defaults.
package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ayusman/skytouch/internal/detector"
	"github.com/ayusman/skytouch/internal/gesture"
)

// Camera holds the capture settings.
type Camera struct {
	DeviceID int `json:"device_id"`
	Width    int `json:"width"`
	Height   int `json:"height"`
	FPS      int `json:"fps"`
}

// Tracking holds the hand-tracking settings passed to the detector backend.
type Tracking struct {
	MaxHands               int     `json:"max_hands"`
	MinDetectionConfidence float64 `json:"min_detection_confidence"`
	MinTrackingConfidence  float64 `json:"min_tracking_confidence"`
}

// Gesture holds the recognition thresholds plus the cursor-mapping settings
// consumed by the mouse controller. Durations are expressed in seconds to
// keep the JSON form plain.
type Gesture struct {
	FingerThreshold         float64 `json:"finger_threshold"`
	ClickThreshold          float64 `json:"click_threshold"`
	DoubleClickWindow       float64 `json:"double_click_window"`
	ScrollDistanceThreshold float64 `json:"scroll_distance_threshold"`
	ScrollRequiredFrames    int     `json:"scroll_required_frames"`
	InvertScrollX           bool    `json:"invert_scroll_x"`
	InvertScrollY           bool    `json:"invert_scroll_y"`
	SwipeDistanceThreshold  float64 `json:"swipe_distance_threshold"`
	SwipeRequiredFrames     int     `json:"swipe_required_frames"`
	SwipeCooldown           float64 `json:"swipe_cooldown"`
	InvertSwipeX            bool    `json:"invert_swipe_x"`
	InvertSwipeY            bool    `json:"invert_swipe_y"`

	// Cursor mapping
	SmoothingFactor float64 `json:"smoothing_factor"`
	Sensitivity     float64 `json:"sensitivity"`
	ScrollAmount    int     `json:"scroll_amount"`
	InvertX         bool    `json:"invert_x"`
	InvertY         bool    `json:"invert_y"`
}

// Server holds the HTTP server settings.
type Server struct {
	Addr string `json:"addr"`
}

// Config is the full application configuration.
type Config struct {
	Camera   Camera   `json:"camera"`
	Tracking Tracking `json:"tracking"`
	Gesture  Gesture  `json:"gesture"`
	Server   Server   `json:"server"`

	// SwipeBindings maps a swipe direction (left, right, up, down) to a
	// plugin action as "plugin/action". Unbound directions use the
	// built-in desktop-switch hotkeys.
	SwipeBindings map[string]string `json:"swipe_bindings,omitempty"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Camera: Camera{
			DeviceID: 0,
			Width:    480,
			Height:   360,
			FPS:      30,
		},
		Tracking: Tracking{
			MaxHands:               1,
			MinDetectionConfidence: 0.7,
			MinTrackingConfidence:  0.5,
		},
		Gesture: Gesture{
			FingerThreshold:         0.02,
			ClickThreshold:          0.12,
			DoubleClickWindow:       0.5,
			ScrollDistanceThreshold: 0.003,
			ScrollRequiredFrames:    1,
			InvertScrollX:           true,
			InvertScrollY:           false,
			SwipeDistanceThreshold:  0.008,
			SwipeRequiredFrames:     3,
			SwipeCooldown:           0.5,
			InvertSwipeX:            true,
			InvertSwipeY:            false,
			SmoothingFactor:         0.5,
			Sensitivity:             1.5,
			ScrollAmount:            5,
			InvertX:                 false,
			InvertY:                 false,
		},
		Server: Server{
			Addr: ":8080",
		},
	}
}

// Load parses a JSON document over the defaults, so a partial document only
// overrides the sections it names.
func Load(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. The gesture core trusts its inputs, so all
// range enforcement lives here.
func (c Config) Validate() error {
	switch {
	case c.Camera.Width <= 0 || c.Camera.Height <= 0:
		return fmt.Errorf("config: camera resolution %dx%d is invalid", c.Camera.Width, c.Camera.Height)
	case c.Camera.FPS <= 0:
		return fmt.Errorf("config: camera fps %d is invalid", c.Camera.FPS)
	case c.Tracking.MaxHands < 1:
		return fmt.Errorf("config: max_hands %d is invalid", c.Tracking.MaxHands)
	case c.Gesture.FingerThreshold < 0:
		return fmt.Errorf("config: finger_threshold %f is negative", c.Gesture.FingerThreshold)
	case c.Gesture.ClickThreshold <= 0:
		return fmt.Errorf("config: click_threshold %f is invalid", c.Gesture.ClickThreshold)
	case c.Gesture.ScrollRequiredFrames < 1 || c.Gesture.SwipeRequiredFrames < 1:
		return fmt.Errorf("config: required frame counts must be at least 1")
	case c.Gesture.SmoothingFactor < 0 || c.Gesture.SmoothingFactor >= 1:
		return fmt.Errorf("config: smoothing_factor %f outside [0, 1)", c.Gesture.SmoothingFactor)
	case c.Gesture.Sensitivity <= 0:
		return fmt.Errorf("config: sensitivity %f is invalid", c.Gesture.Sensitivity)
	}

	for dir := range c.SwipeBindings {
		switch gesture.Direction(dir) {
		case gesture.DirectionLeft, gesture.DirectionRight, gesture.DirectionUp, gesture.DirectionDown:
		default:
			return fmt.Errorf("config: swipe binding direction %q is invalid", dir)
		}
	}
	return nil
}

// GestureConfig converts the gesture section to the core detector's form.
func (c Config) GestureConfig() gesture.Config {
	g := c.Gesture
	return gesture.Config{
		FingerThreshold:         g.FingerThreshold,
		ClickThreshold:          g.ClickThreshold,
		DoubleClickWindow:       secondsToDuration(g.DoubleClickWindow),
		ScrollDistanceThreshold: g.ScrollDistanceThreshold,
		ScrollRequiredFrames:    g.ScrollRequiredFrames,
		InvertScrollX:           g.InvertScrollX,
		InvertScrollY:           g.InvertScrollY,
		SwipeDistanceThreshold:  g.SwipeDistanceThreshold,
		SwipeRequiredFrames:     g.SwipeRequiredFrames,
		SwipeCooldown:           secondsToDuration(g.SwipeCooldown),
		InvertSwipeX:            g.InvertSwipeX,
		InvertSwipeY:            g.InvertSwipeY,
	}
}

// DetectorConfig converts the tracking section to the hand detector's form.
func (c Config) DetectorConfig() detector.Config {
	return detector.Config{
		MaxHands:        c.Tracking.MaxHands,
		MinConfidence:   c.Tracking.MinDetectionConfidence,
		MinTrackingConf: c.Tracking.MinTrackingConfidence,
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
