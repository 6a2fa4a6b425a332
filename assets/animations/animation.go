// Package animations steps frame indices for sprite sheets.
package animations

// Animation cycles through frames First..Last, Step at a time, holding each
// for FrameTime seconds.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameTime        float64 // seconds each frame is shown
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func NewAnimation(first, last, step int, frameTime float64) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:     first,
		Last:      last,
		Step:      step,
		FrameTime: frameTime,
		frame:     first,
	}
}

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if a.FrameTime <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameTime {
		a.elapsed -= a.FrameTime
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Restart returns to the first frame and clears the loop flag.
func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}
