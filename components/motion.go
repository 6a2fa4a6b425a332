package components

import (
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector = scenegraph.Vector

// MotionData is the velocity of a kinematic actor and whether its last move
// ended on the ground. Position lives in the actor's Object.
type MotionData struct {
	Velocity Vector
	Grounded bool
}

var Motion = donburi.NewComponentType[MotionData]()

// BodyData links an entity to its chipmunk body and main shape.
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

var Body = donburi.NewComponentType[BodyData]()
