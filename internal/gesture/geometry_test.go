package gesture

import (
	"math"
	"testing"

	"github.com/ayusman/skytouch/internal/detector"
)

func TestDistance(t *testing.T) {
	a := detector.Point3D{X: 0, Y: 0, Z: 0}
	b := detector.Point3D{X: 1, Y: 2, Z: 2}

	if got := Distance(a, b); got != 3.0 {
		t.Errorf("Distance() = %f, want 3.0", got)
	}

	if got := Distance(a, a); got != 0 {
		t.Errorf("Distance(a, a) = %f, want 0", got)
	}

	// Symmetric
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance should be symmetric")
	}
}

func TestMovementDirection(t *testing.T) {
	const min = 0.01

	tests := []struct {
		name   string
		dx, dy float64
		want   Direction
	}{
		{"both below threshold", 0.005, 0.005, DirectionNone},
		{"zero delta", 0, 0, DirectionNone},
		{"x dominates positive", 0.05, 0.02, DirectionRight},
		{"x dominates negative", -0.05, 0.02, DirectionLeft},
		{"y dominates negative is up", 0.005, -0.05, DirectionUp},
		{"y dominates positive is down", 0.005, 0.05, DirectionDown},
		{"y wins when x below threshold", 0.002, 0.05, DirectionDown},
		{"equal magnitudes fall through to y", 0.05, 0.05, DirectionDown},
		{"x above threshold but y larger", 0.02, -0.04, DirectionUp},
		{"x exactly at threshold falls to y", 0.01, 0.02, DirectionDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MovementDirection(tt.dx, tt.dy, min); got != tt.want {
				t.Errorf("MovementDirection(%f, %f, %f) = %q, want %q",
					tt.dx, tt.dy, min, got, tt.want)
			}
		})
	}
}

func TestMovementDirection_NoneIffBothBelowThreshold(t *testing.T) {
	const min = 0.01

	deltas := []float64{-0.05, -0.01, -0.005, 0, 0.005, 0.01, 0.05}
	for _, dx := range deltas {
		for _, dy := range deltas {
			got := MovementDirection(dx, dy, min)
			bothBelow := math.Abs(dx) <= min && math.Abs(dy) <= min
			if bothBelow != (got == DirectionNone) {
				t.Errorf("MovementDirection(%f, %f): got %q, bothBelow=%v",
					dx, dy, got, bothBelow)
			}
		}
	}
}
