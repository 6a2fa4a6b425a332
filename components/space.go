package components

import (
	"github.com/automoto/bombspot/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the scene's physics world.
type SpaceData struct {
	World *physics.World
}

var Space = donburi.NewComponentType[SpaceData]()
