package gamemath

// ApproachZero moves speed toward zero by step without crossing it.
func ApproachZero(speed, step float64) float64 {
	if speed > step {
		return speed - step
	}
	if speed < -step {
		return speed + step
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// IntegrateVertical applies grounding, gravity and the jump impulse to a
// vertical velocity. Grounded actors lose all vertical speed; airborne ones
// accumulate gravity. A jump overwrites the result, and only counts while
// grounded, so mid-air presses do nothing.
func IntegrateVertical(vy float64, grounded, jumpJustPressed bool, gravityY, jumpVelocity, dt float64) float64 {
	if grounded {
		vy = 0
	} else {
		vy += gravityY * dt
	}

	if jumpJustPressed && grounded {
		vy = jumpVelocity
	}
	return vy
}
