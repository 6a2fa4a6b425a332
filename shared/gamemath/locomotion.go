package gamemath

import "math"

// TieBreak decides what happens when both direction keys are held.
type TieBreak int

const (
	TieRight  TieBreak = iota // right direction wins
	TieLeft                   // left direction wins
	TieCancel                 // no input
)

// ParseTieBreak maps a config string to a TieBreak.
func ParseTieBreak(s string) (TieBreak, bool) {
	switch s {
	case "", "right":
		return TieRight, true
	case "left":
		return TieLeft, true
	case "cancel":
		return TieCancel, true
	}
	return TieRight, false
}

func (t TieBreak) String() string {
	switch t {
	case TieLeft:
		return "left"
	case TieCancel:
		return "cancel"
	default:
		return "right"
	}
}

// Movement holds the horizontal tuning for a kinematic actor.
type Movement struct {
	Acceleration float64
	Deceleration float64
	MaxSpeed     float64
}

// Steer converts held direction keys into -1, 0 or 1.
func Steer(left, right bool, tie TieBreak) float64 {
	switch {
	case left && right:
		switch tie {
		case TieLeft:
			return -1
		case TieCancel:
			return 0
		default:
			return 1
		}
	case left:
		return -1
	case right:
		return 1
	}
	return 0
}

// Locomote returns the next horizontal velocity for the given steering
// direction. Turning against the current motion uses the larger of the
// acceleration and deceleration rates. Without input the velocity decays to
// exactly zero and never overshoots.
func Locomote(v, dir, dt float64, m Movement) float64 {
	if dir == 0 {
		return ApproachZero(v, m.Deceleration*dt)
	}

	rate := m.Acceleration
	if v*dir < 0 {
		rate = math.Max(m.Acceleration, m.Deceleration)
	}
	return ClampSpeed(v+dir*rate*dt, m.MaxSpeed)
}
