// Package gesture converts per-frame hand landmarks into trackpad control
// events: a stable gesture mode plus edge-triggered click, scroll and swipe
// actions.
package gesture

import (
	"math"

	"github.com/ayusman/skytouch/internal/detector"
)

// Direction labels a movement axis in screen terms.
type Direction string

const (
	DirectionNone  Direction = "none"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// Distance returns the Euclidean distance between two landmarks over all
// three coordinates.
func Distance(a, b detector.Point3D) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// MovementDirection classifies a palm delta as a single direction.
//
// The X axis wins when |dx| exceeds both |dy| and minDistance; otherwise the
// Y axis is checked against minDistance alone. In normalized image
// coordinates y grows downward, so a negative dy reads as "up" on screen.
// Returns DirectionNone when neither axis clears the threshold.
func MovementDirection(dx, dy, minDistance float64) Direction {
	if math.Abs(dx) > math.Abs(dy) && math.Abs(dx) > minDistance {
		if dx > 0 {
			return DirectionRight
		}
		return DirectionLeft
	}
	if math.Abs(dy) > minDistance {
		if dy < 0 {
			return DirectionUp
		}
		return DirectionDown
	}
	return DirectionNone
}
