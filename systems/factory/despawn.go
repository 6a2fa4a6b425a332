package factory

import (
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Despawn removes e and everything attached under it, children first, from
// both the physics world and the ECS world.
func Despawn(ecs *ecs.ECS, e donburi.Entity) {
	world := spaceWorld(ecs)
	for _, entity := range scenegraph.Descendants(ecs.World, e) {
		world.Remove(entity)
		ecs.World.Remove(entity)
	}
}
