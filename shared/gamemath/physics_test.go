package gamemath

import "testing"

const (
	testGravityY     = 78.48
	testJumpVelocity = -60.0
)

func TestIntegrateVertical(t *testing.T) {
	tests := []struct {
		name     string
		vy       float64
		grounded bool
		jump     bool
		dt       float64
		want     float64
	}{
		{"grounded resets fall speed", 45, true, false, 0.1, 0},
		{"grounded cancels upward residual", -30, true, false, 0.1, 0},
		{"airborne accumulates gravity", 10, false, false, 0.5, 10 + testGravityY*0.5},
		{"jump from ground overwrites", 12, true, true, 0.1, testJumpVelocity},
		{"jump while airborne ignored", -20, false, true, 0.5, -20 + testGravityY*0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := IntegrateVertical(tc.vy, tc.grounded, tc.jump, testGravityY, testJumpVelocity, tc.dt)
			if !almostEqual(got, tc.want) {
				t.Errorf("IntegrateVertical() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIntegrateVerticalGroundedIsExactlyZero(t *testing.T) {
	for _, vy := range []float64{-1e9, -60, -0.0001, 0, 0.0001, 16, 1e9} {
		if got := IntegrateVertical(vy, true, false, testGravityY, testJumpVelocity, 1.0/60); got != 0 {
			t.Fatalf("grounded vy=%v produced %v", vy, got)
		}
	}
}

func TestIntegrateVerticalJumpIsExact(t *testing.T) {
	if got := IntegrateVertical(33.3, true, true, testGravityY, testJumpVelocity, 1.0/60); got != testJumpVelocity {
		t.Fatalf("jump produced %v, expected exactly %v", got, testJumpVelocity)
	}
}

func TestApproachZero(t *testing.T) {
	tests := []struct {
		speed, step, want float64
	}{
		{5, 2, 3},
		{-5, 2, -3},
		{1, 2, 0},
		{-1, 2, 0},
		{2, 2, 0},
		{0, 2, 0},
	}
	for _, tc := range tests {
		if got := ApproachZero(tc.speed, tc.step); got != tc.want {
			t.Errorf("ApproachZero(%v, %v) = %v, expected %v", tc.speed, tc.step, got, tc.want)
		}
	}
}
