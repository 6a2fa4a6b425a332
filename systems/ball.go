package systems

import (
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBall applies the hop and spin controls to every ball and copies its
// rotation to the sprite.
func UpdateBall(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	hop := GetAction(input, cfg.ActionBallHop).JustPressed
	spinLeft := GetAction(input, cfg.ActionBallSpinLeft).Pressed
	spinRight := GetAction(input, cfg.ActionBallSpinRight).Pressed

	respawnFallenBalls(ecs)

	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		body := components.Body.Get(e).Body
		if body == nil {
			return
		}

		if hop {
			v := body.Velocity()
			body.SetVelocity(v.X, v.Y-cfg.Ball.HopImpulse)
			body.Activate()
			ball.Hops++
			log.Debug("ball hopped", "hops", ball.Hops, "vy", v.Y-cfg.Ball.HopImpulse)
		}

		if spinLeft {
			body.SetAngularVelocity(body.AngularVelocity() - cfg.Ball.SpinStep)
			body.Activate()
		}
		if spinRight {
			body.SetAngularVelocity(body.AngularVelocity() + cfg.Ball.SpinStep)
			body.Activate()
		}

		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Rotation = body.Angle()
		}

		ball.Ticks++
		if cfg.Debug.LogAltitude && cfg.Debug.AltitudeEvery > 0 && ball.Ticks%cfg.Debug.AltitudeEvery == 0 {
			logAltitude(ecs, body)
		}
	})
}

// fallMargin is how far below the level a ball may drop before it respawns.
const fallMargin = 200

// respawnFallenBalls replaces balls that dropped off the level with fresh
// ones at their spawn point. The old ball's spot and marker go with it.
func respawnFallenBalls(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	floor := float64(level.MapHeight) + fallMargin

	var fallen []*donburi.Entry
	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		if body := components.Body.Get(e).Body; body != nil && body.Position().Y > floor {
			fallen = append(fallen, e)
		}
	})

	for _, e := range fallen {
		spawn := components.Ball.Get(e).Spawn
		log.Info("ball fell off the level, respawning", "x", spawn.X, "y", spawn.Y)
		factory.Despawn(ecs, e.Entity())
		factory.CreateBall(ecs, spawn)
	}
}

// logAltitude reports how high the ball sits above the bottom of the level.
func logAltitude(ecs *ecs.ECS, body *cp.Body) {
	pos := body.Position()
	altitude := -pos.Y
	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			altitude = float64(level.MapHeight) - pos.Y
		}
	}
	log.Info("ball altitude", "altitude", altitude, "x", pos.X, "vy", body.Velocity().Y)
}
