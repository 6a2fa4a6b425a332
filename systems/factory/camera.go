package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
