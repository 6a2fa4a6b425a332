package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/shared/leveldata"
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player centred on spawn, with a placer sensor
// riding on its body.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	world := spaceWorld(ecs)
	obj, body := world.AddKinematic(player.Entity(), spawn.X-w/2, spawn.Y-h/2, w, h)
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Body.SetValue(player, components.BodyData{Body: body})
	components.Player.SetValue(player, components.PlayerData{Facing: 1})
	components.Motion.SetValue(player, components.MotionData{})
	components.Visibility.SetValue(player, components.VisibilityData{Mode: components.VisibilityVisible})

	anim := GenerateAnimations()
	components.Animation.Set(player, anim)
	components.Sprite.SetValue(player, components.SpriteData{
		Image: assets.PlayerFrame(anim.CurrentAnimation.Frame()),
		Layer: 1,
	})

	placer := archetypes.Placer.Spawn(ecs)
	shape := world.AddSensor(placer.Entity(), body, cfg.Sensor.PlacerRadius, sensor.RolePlacer)
	components.Sensor.SetValue(placer, components.SensorData{
		Role:   sensor.RolePlacer,
		Radius: cfg.Sensor.PlacerRadius,
		Shape:  shape,
	})
	components.Attach(player, placer, components.Vector{})

	return player
}
