package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static solid to both collision spaces.
func CreateWall(ecs *ecs.ECS, solid leveldata.SolidRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	world := spaceWorld(ecs)
	obj := world.AddSolid(wall.Entity(), solid.X, solid.Y, solid.W, solid.H)
	obj.Data = wall // Link for O(1) lookup
	world.SetMaterial(wall.Entity(), solid.Friction, solid.Restitution)

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	return wall
}
