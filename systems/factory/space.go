package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellSize int, gravity float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{
		World: physics.NewWorld(width, height, cellSize, gravity),
	})
	return space
}

// spaceWorld returns the physics world created by CreateSpace.
func spaceWorld(ecs *ecs.ECS) *physics.World {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: no physics space; call CreateSpace first")
	}
	return components.Space.Get(entry).World
}
