package gamemath

import (
	"math"
	"testing"
)

var defaultMovement = Movement{Acceleration: 360, Deceleration: 1000, MaxSpeed: 160}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name        string
		left, right bool
		tie         TieBreak
		want        float64
	}{
		{"none", false, false, TieRight, 0},
		{"left", true, false, TieRight, -1},
		{"right", false, true, TieRight, 1},
		{"both right wins", true, true, TieRight, 1},
		{"both left wins", true, true, TieLeft, -1},
		{"both cancel", true, true, TieCancel, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Steer(tc.left, tc.right, tc.tie); got != tc.want {
				t.Errorf("Steer(%v, %v) = %v, expected %v", tc.left, tc.right, got, tc.want)
			}
		})
	}
}

func TestParseTieBreak(t *testing.T) {
	for _, s := range []string{"right", "left", "cancel"} {
		tie, ok := ParseTieBreak(s)
		if !ok || tie.String() != s {
			t.Errorf("ParseTieBreak(%q) = %v, %v", s, tie, ok)
		}
	}
	if tie, ok := ParseTieBreak(""); !ok || tie != TieRight {
		t.Errorf("empty tie break should default to right, got %v %v", tie, ok)
	}
	if _, ok := ParseTieBreak("sideways"); ok {
		t.Errorf("unknown tie break should be rejected")
	}
}

func TestLocomoteScenarios(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		dir  float64
		dt   float64
		want float64
	}{
		{"accelerate from rest", 0, 1, 0.1, 36},
		{"accelerate left from rest", 0, -1, 0.1, -36},
		{"reverse uses braking rate", 160, -1, 0.1, 60},
		{"reverse from left", -160, 1, 0.1, -60},
		{"clamped at max", 150, 1, 0.1, 160},
		{"clamped at negative max", -150, -1, 0.1, -160},
		{"decay", 100, 0, 0.05, 50},
		{"decay snaps to zero", 30, 0, 0.1, 0},
		{"decay negative snaps to zero", -30, 0, 0.1, 0},
		{"rest stays at rest", 0, 0, 0.1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Locomote(tc.v, tc.dir, tc.dt, defaultMovement)
			if !almostEqual(got, tc.want) {
				t.Errorf("Locomote(%v, %v, %v) = %v, expected %v", tc.v, tc.dir, tc.dt, got, tc.want)
			}
		})
	}
}

func TestLocomoteNeverExceedsMaxSpeed(t *testing.T) {
	dts := []float64{1.0 / 144, 1.0 / 60, 0.1, 0.5, 2}
	for v := -400.0; v <= 400; v += 12.5 {
		for _, dir := range []float64{-1, 1} {
			for _, dt := range dts {
				got := Locomote(v, dir, dt, defaultMovement)
				if math.Abs(got) > defaultMovement.MaxSpeed {
					t.Fatalf("Locomote(%v, %v, %v) = %v exceeds max speed", v, dir, dt, got)
				}
			}
		}
	}
}

func TestLocomoteDecayReachesZeroWithoutOvershoot(t *testing.T) {
	const dt = 1.0 / 60
	for _, start := range []float64{160, -160, 73.25, -0.001, 999} {
		v := start
		maxTicks := int(math.Ceil(math.Abs(start)/(defaultMovement.Deceleration*dt))) + 1
		ticks := 0
		for v != 0 {
			next := Locomote(v, 0, dt, defaultMovement)
			if math.Abs(next) >= math.Abs(v) {
				t.Fatalf("start %v: magnitude did not decrease (%v -> %v)", start, v, next)
			}
			if next*start < 0 {
				t.Fatalf("start %v: overshot to %v", start, next)
			}
			v = next
			ticks++
			if ticks > maxTicks {
				t.Fatalf("start %v: did not reach zero within %d ticks", start, maxTicks)
			}
		}
	}
}

func TestCanvasScale(t *testing.T) {
	tests := []struct {
		name           string
		ow, oh, cw, ch float64
		want           float64
	}{
		{"exact fit", 640, 360, 640, 360, 1},
		{"double", 1280, 720, 640, 360, 2},
		{"limited by height", 1920, 720, 640, 360, 2},
		{"rounds up", 1600, 900, 640, 360, 3},
		{"never below one", 320, 180, 640, 360, 1},
		{"empty canvas", 1280, 720, 0, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanvasScale(tc.ow, tc.oh, tc.cw, tc.ch); got != tc.want {
				t.Errorf("CanvasScale() = %v, expected %v", got, tc.want)
			}
		})
	}
}
