// Package physics owns the two collision spaces the sandbox runs on.
//
// The kinematic player is moved through a resolv space with axis separated
// move-and-slide. Everything that needs dynamics (the ball, contact events,
// sensors) lives in a chipmunk space. Static solids are mirrored into both.
package physics

import (
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	TagSolid  = "solid"
	TagPlayer = "player"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeBall
	collisionTypePlayer
	collisionTypePlacer
	collisionTypeSpot
)

// Filter categories. A placer only sees spots and a spot only sees placers.
const (
	categorySolid  uint = 1
	categoryPlacer uint = 2
	categoryPlayer uint = 4
	categoryBall   uint = 8
	categorySpot   uint = 32
)

// World is the physics layer of one scene.
type World struct {
	space    *resolv.Space
	chipmunk *cp.Space
	gravity  float64

	owners  map[*cp.Shape]donburi.Entity
	bodies  map[donburi.Entity]*cp.Body
	objects map[donburi.Entity]*resolv.Object

	records []sensor.Collision[donburi.Entity]
}

// NewWorld creates both spaces for a level of the given pixel size.
func NewWorld(width, height, cellSize int, gravity float64) *World {
	w := &World{
		space:    resolv.NewSpace(width, height, cellSize, cellSize),
		chipmunk: cp.NewSpace(),
		owners:   make(map[*cp.Shape]donburi.Entity),
		bodies:   make(map[donburi.Entity]*cp.Body),
		objects:  make(map[donburi.Entity]*resolv.Object),
	}
	w.chipmunk.Iterations = 20
	w.SetGravity(gravity)
	w.setupHandlers()
	return w
}

// Space returns the resolv space used for character movement.
func (w *World) Space() *resolv.Space {
	return w.space
}

// Chipmunk returns the dynamics space.
func (w *World) Chipmunk() *cp.Space {
	return w.chipmunk
}

// Gravity is the downward acceleration in pixels per second squared.
func (w *World) Gravity() float64 {
	return w.gravity
}

func (w *World) SetGravity(g float64) {
	w.gravity = g
	w.chipmunk.SetGravity(cp.Vector{X: 0, Y: g})
}

// AddSolid registers a static rectangle in both spaces.
func (w *World) AddSolid(e donburi.Entity, x, y, width, height float64) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, TagSolid)
	w.space.Add(obj)
	w.objects[e] = obj

	shape := cp.NewBox2(w.chipmunk.StaticBody, cp.BB{L: x, B: y, R: x + width, T: y + height}, 0)
	shape.SetElasticity(0.5)
	shape.SetFriction(0.5)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.NewShapeFilter(0, categorySolid, cp.ALL_CATEGORIES))
	w.chipmunk.AddShape(shape)
	w.owners[shape] = e
	return obj
}

// SetMaterial changes the bounce and friction of every shape e owns.
func (w *World) SetMaterial(e donburi.Entity, friction, restitution float64) {
	for shape, owner := range w.owners {
		if owner != e || shape.Sensor() {
			continue
		}
		shape.SetFriction(friction)
		shape.SetElasticity(restitution)
	}
}

// AddKinematic registers a character box. The resolv object is the source of
// truth; the chipmunk body follows it so the character can push the ball.
func (w *World) AddKinematic(e donburi.Entity, x, y, width, height float64) (*resolv.Object, *cp.Body) {
	obj := resolv.NewObject(x, y, width, height, TagPlayer)
	w.space.Add(obj)
	w.objects[e] = obj

	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: x + width/2, Y: y + height/2})
	w.chipmunk.AddBody(body)
	w.bodies[e] = body

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.5)
	shape.SetCollisionType(collisionTypePlayer)
	// Solids are handled by resolv; chipmunk only needs the ball contact.
	shape.SetFilter(cp.NewShapeFilter(0, categoryPlayer, categoryBall))
	w.chipmunk.AddShape(shape)
	w.owners[shape] = e
	return obj, body
}

// BallOptions are the material settings of a dynamic ball.
type BallOptions struct {
	Radius      float64
	Restitution float64
	Friction    float64
	Damping     float64 // linear and angular, per second
}

// AddBall registers a dynamic circle centred on (x, y).
func (w *World) AddBall(e donburi.Entity, x, y float64, opts BallOptions) (*cp.Body, *cp.Shape) {
	mass := 1.0
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, opts.Radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	if opts.Damping > 0 {
		c := opts.Damping
		body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping, dt float64) {
			cp.BodyUpdateVelocity(b, gravity, damping/(1+dt*c), dt)
		})
	}
	w.chipmunk.AddBody(body)
	w.bodies[e] = body

	shape := cp.NewCircle(body, opts.Radius, cp.Vector{})
	shape.SetElasticity(opts.Restitution)
	shape.SetFriction(opts.Friction)
	shape.SetCollisionType(collisionTypeBall)
	shape.SetFilter(cp.NewShapeFilter(0, categoryBall, categorySolid|categoryPlayer|categoryBall))
	w.chipmunk.AddShape(shape)
	w.owners[shape] = e
	return body, shape
}

// AddSensor attaches a proximity circle for e to an existing body. Spots are
// chipmunk sensors; placers are plain shapes filtered so that they can only
// ever touch a spot, which keeps every placer/spot pair a sensor contact.
func (w *World) AddSensor(e donburi.Entity, body *cp.Body, radius float64, role sensor.Role) *cp.Shape {
	shape := cp.NewCircle(body, radius, cp.Vector{})
	switch role {
	case sensor.RolePlacer:
		shape.SetCollisionType(collisionTypePlacer)
		shape.SetFilter(cp.NewShapeFilter(0, categoryPlacer, categorySpot))
	case sensor.RoleSpot:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSpot)
		shape.SetFilter(cp.NewShapeFilter(0, categorySpot, categoryPlacer))
	default:
		shape.SetSensor(true)
		shape.SetFilter(cp.NewShapeFilter(0, 0, 0))
	}
	w.chipmunk.AddShape(shape)
	w.owners[shape] = e
	return shape
}

// Remove drops everything registered for e. Shapes of other entities that
// ride on a body owned by e are removed with it.
func (w *World) Remove(e donburi.Entity) {
	if obj, ok := w.objects[e]; ok {
		w.space.Remove(obj)
		delete(w.objects, e)
	}
	for shape, owner := range w.owners {
		if owner == e {
			w.removeShape(shape)
		}
	}
	if body, ok := w.bodies[e]; ok {
		var attached []*cp.Shape
		body.EachShape(func(s *cp.Shape) {
			attached = append(attached, s)
		})
		for _, s := range attached {
			w.removeShape(s)
		}
		if w.chipmunk.ContainsBody(body) {
			w.chipmunk.RemoveBody(body)
		}
		delete(w.bodies, e)
	}
}

func (w *World) removeShape(shape *cp.Shape) {
	if w.chipmunk.ContainsShape(shape) {
		w.chipmunk.RemoveShape(shape)
	}
	delete(w.owners, shape)
}

// Step advances the dynamics space. Contact transitions seen during the step
// are queued for Drain.
func (w *World) Step(dt float64) {
	w.chipmunk.Step(dt)
}

// Drain returns the queued contact records in the order they happened and
// clears the queue.
func (w *World) Drain() []sensor.Collision[donburi.Entity] {
	out := w.records
	w.records = nil
	return out
}

func (w *World) setupHandlers() {
	placement := w.chipmunk.NewCollisionHandler(collisionTypePlacer, collisionTypeSpot)
	placement.UserData = w
	placement.BeginFunc = beginContact
	placement.SeparateFunc = separateContact

	bounce := w.chipmunk.NewCollisionHandler(collisionTypeBall, collisionTypeSolid)
	bounce.UserData = w
	bounce.BeginFunc = beginContact
	bounce.SeparateFunc = separateContact
}

func beginContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
	if w, ok := userData.(*World); ok {
		w.record(arb, true)
	}
	return true
}

func separateContact(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
	if w, ok := userData.(*World); ok {
		w.record(arb, false)
	}
}

func (w *World) record(arb *cp.Arbiter, began bool) {
	a, b := arb.Shapes()
	ea, okA := w.owners[a]
	eb, okB := w.owners[b]
	if !okA || !okB {
		return
	}
	w.records = append(w.records, sensor.Collision[donburi.Entity]{
		A:      ea,
		B:      eb,
		Began:  began,
		Sensor: a.Sensor() || b.Sensor(),
	})
}
