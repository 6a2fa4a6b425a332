package physics

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
)

// groundProbe is how far below the box a solid still counts as ground.
const groundProbe = 1.0

// Move slides obj by (dx, dy) against solids, horizontal axis first, and
// reports whether it ends up standing on something. When not rising, a
// solid within groundProbe below the box snaps it down and grounds it.
func (w *World) Move(obj *resolv.Object, dx, dy float64) (grounded bool) {
	if dx != 0 {
		obj.X += clampHorizontal(obj, dx)
	}

	probe := dy
	if dy >= 0 {
		probe += groundProbe
	}
	dy, grounded = clampVertical(obj, dy, probe)
	obj.Y += dy

	obj.Update()
	return grounded
}

// MoveKinematic moves a character box and drags its chipmunk body along.
func (w *World) MoveKinematic(obj *resolv.Object, body *cp.Body, dx, dy, dt float64) bool {
	from := center(obj)
	grounded := w.Move(obj, dx, dy)
	SyncKinematic(body, from, center(obj), dt)
	return grounded
}

// SyncKinematic puts body at from with the velocity that carries it to to
// over the next step, so it imparts momentum to whatever it hits.
func SyncKinematic(body *cp.Body, from, to cp.Vector, dt float64) {
	body.SetPosition(from)
	if dt <= 0 {
		body.SetVelocityVector(cp.Vector{})
		body.SetPosition(to)
		return
	}
	body.SetVelocityVector(to.Sub(from).Mult(1 / dt))
}

func center(obj *resolv.Object) cp.Vector {
	return cp.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

func clampHorizontal(obj *resolv.Object, dx float64) float64 {
	check := obj.Check(dx, 0, TagSolid)
	if check == nil {
		return dx
	}
	for _, s := range check.ObjectsByTags(TagSolid) {
		if !overlaps(obj.Y, obj.H, s.Y, s.H) {
			continue
		}
		if dx > 0 && obj.X+obj.W <= s.X {
			dx = math.Min(dx, s.X-(obj.X+obj.W))
		} else if dx < 0 && obj.X >= s.X+s.W {
			dx = math.Max(dx, s.X+s.W-obj.X)
		}
	}
	return dx
}

func clampVertical(obj *resolv.Object, dy, probe float64) (float64, bool) {
	check := obj.Check(0, probe, TagSolid)
	if check == nil {
		return dy, false
	}
	grounded := false
	for _, s := range check.ObjectsByTags(TagSolid) {
		if !overlaps(obj.X, obj.W, s.X, s.W) {
			continue
		}
		if probe >= 0 {
			gap := s.Y - (obj.Y + obj.H)
			if gap >= 0 && gap <= probe && (!grounded || gap < dy) {
				dy = gap
				grounded = true
			}
		} else if obj.Y >= s.Y+s.H {
			dy = math.Max(dy, s.Y+s.H-obj.Y)
		}
	}
	return dy, grounded
}

// overlaps reports whether the open spans [a, a+al) and [b, b+bl) intersect.
func overlaps(a, al, b, bl float64) bool {
	return a < b+bl && a+al > b
}
