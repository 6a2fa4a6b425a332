package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/physics"
	"github.com/automoto/bombspot/shared/leveldata"
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns a dynamic ball. A ball flagged as a bomb spot carries a
// spot sensor whose bomb marker starts hidden.
func CreateBall(ecs *ecs.ECS, spawn leveldata.SpawnPoint) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	world := spaceWorld(ecs)
	body, shape := world.AddBall(ball.Entity(), spawn.X, spawn.Y, physics.BallOptions{
		Radius:      cfg.Ball.Radius,
		Restitution: cfg.Ball.Restitution,
		Friction:    cfg.Ball.Friction,
		Damping:     cfg.Ball.Damping,
	})

	components.Ball.SetValue(ball, components.BallData{Radius: cfg.Ball.Radius, Spawn: spawn})
	components.Body.SetValue(ball, components.BodyData{Body: body, Shape: shape})
	components.Visibility.SetValue(ball, components.VisibilityData{Mode: components.VisibilityVisible})
	components.Sprite.SetValue(ball, components.SpriteData{
		Image: assets.BallImage(cfg.Ball.Radius),
		Layer: 1,
	})

	if spawn.BombSpot {
		createSpot(ecs, ball)
	}
	return ball
}

func createSpot(ecs *ecs.ECS, ball *donburi.Entry) *donburi.Entry {
	world := spaceWorld(ecs)
	body := components.Body.Get(ball).Body

	spot := archetypes.Spot.Spawn(ecs)
	shape := world.AddSensor(spot.Entity(), body, cfg.Sensor.SpotRadius, sensor.RoleSpot)
	components.Sensor.SetValue(spot, components.SensorData{
		Role:   sensor.RoleSpot,
		Radius: cfg.Sensor.SpotRadius,
		Shape:  shape,
	})
	components.Attach(ball, spot, components.Vector{})

	createBomb(ecs, spot)
	return spot
}

func createBomb(ecs *ecs.ECS, spot *donburi.Entry) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(ecs)

	components.Sprite.SetValue(bomb, components.SpriteData{
		Image:  assets.MarkerImage(cfg.Marker.Size),
		Tint:   cfg.Marker.Color,
		Tinted: true,
		Layer:  2,
	})
	components.Visibility.SetValue(bomb, components.VisibilityData{Mode: components.VisibilityHidden})

	// Grow then shrink, looping while the marker is shown.
	lo, hi := float32(cfg.Marker.PulseMin), float32(cfg.Marker.PulseMax)
	half := float32(cfg.Marker.PulsePeriod / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(lo, hi, half, ease.InOutSine),
		gween.New(hi, lo, half, ease.InOutSine),
	)
	components.Pulse.SetValue(bomb, components.PulseData{Sequence: tw, Scale: float64(lo)})

	components.Attach(spot, bomb, components.Vector{})
	return bomb
}
