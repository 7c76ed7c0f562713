package mouse

import (
	"sync"

	"github.com/go-vgo/robotgo"

	"github.com/ayusman/skytouch/internal/gesture"
)

// minMovementPx is the screen-pixel deadzone below which cursor jitter is
// dropped instead of moved.
const minMovementPx = 2.0

// RobotController drives the real pointer through robotgo.
type RobotController struct {
	mu      sync.Mutex
	cfg     Config
	screenW int
	screenH int

	// Smoothed palm position in normalized space; valid when hasPrev.
	prevX   float64
	prevY   float64
	hasPrev bool
}

// NewRobotController creates a controller for the primary screen.
func NewRobotController(cfg Config) *RobotController {
	w, h := robotgo.GetScreenSize()
	return &RobotController{
		cfg:     cfg,
		screenW: w,
		screenH: h,
	}
}

// UpdateConfig replaces the cursor-mapping settings.
func (c *RobotController) UpdateConfig(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

// Reset drops the movement baseline. Call when the hand disappears or the
// mode leaves Move, so the cursor does not jump when tracking resumes.
func (c *RobotController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasPrev = false
}

// Apply performs the pointer actions for one frame's result.
func (c *RobotController) Apply(res gesture.Result) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case res.IsDoubleClick:
		robotgo.Click("left", true)
	case res.IsClicking:
		robotgo.Click("left", false)
	}
	if res.IsRightClicking {
		robotgo.Click("right", false)
	}

	if res.IsScrolling {
		x, y := scrollSteps(res.ScrollDirection, c.cfg.ScrollAmount)
		robotgo.Scroll(x, y)
	}

	if res.IsSwiping {
		if key, ok := swipeKey(res.SwipeDirection); ok {
			robotgo.KeyTap(key, "ctrl")
		}
	}

	if res.Mode == gesture.ModeMove {
		c.moveCursor(res.PalmCenter.X, res.PalmCenter.Y)
	} else {
		c.hasPrev = false
	}

	return nil
}

// moveCursor translates the cursor by the smoothed palm delta. The movement
// scale is the screen-to-camera resolution ratio times the user sensitivity,
// so a hand crossing the camera view crosses at least the whole screen.
func (c *RobotController) moveCursor(palmX, palmY float64) {
	if !c.hasPrev {
		c.prevX, c.prevY = palmX, palmY
		c.hasPrev = true
		return
	}

	sx := smooth(c.prevX, palmX, c.cfg.SmoothingFactor)
	sy := smooth(c.prevY, palmY, c.cfg.SmoothingFactor)

	scaleX, scaleY := c.movementScale()
	dx := (sx - c.prevX) * float64(c.cfg.CameraWidth) * scaleX
	dy := (sy - c.prevY) * float64(c.cfg.CameraHeight) * scaleY
	if c.cfg.InvertX {
		dx = -dx
	}
	if c.cfg.InvertY {
		dy = -dy
	}

	c.prevX, c.prevY = sx, sy

	if abs(dx) < minMovementPx && abs(dy) < minMovementPx {
		return
	}

	curX, curY := robotgo.Location()
	robotgo.Move(
		clamp(curX+int(dx), c.screenW),
		clamp(curY+int(dy), c.screenH),
	)
}

// movementScale returns the per-axis screen/camera resolution ratio times
// the user sensitivity.
func (c *RobotController) movementScale() (x, y float64) {
	if c.cfg.CameraWidth <= 0 || c.cfg.CameraHeight <= 0 {
		return c.cfg.Sensitivity, c.cfg.Sensitivity
	}
	x = float64(c.screenW) / float64(c.cfg.CameraWidth) * c.cfg.Sensitivity
	y = float64(c.screenH) / float64(c.cfg.CameraHeight) * c.cfg.Sensitivity
	return x, y
}

// smooth blends the previous and current positions with the EMA factor.
func smooth(prev, cur, factor float64) float64 {
	return prev*factor + cur*(1-factor)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
