package systems

import (
	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed step every system integrates with.
func tickDelta() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdatePlayer steers, applies gravity and moves every player. Grounded is
// taken from the previous move, so a jump needs a tick on the ground first.
func UpdatePlayer(ecs *ecs.ECS) {
	world, ok := physicsWorld(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	dt := tickDelta()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		motion := components.Motion.Get(e)
		obj := components.Object.Get(e).Object
		body := components.Body.Get(e)

		left := GetAction(input, cfg.ActionMoveLeft).Pressed
		right := GetAction(input, cfg.ActionMoveRight).Pressed
		jump := GetAction(input, cfg.ActionJump).JustPressed

		dir := gamemath.Steer(left, right, cfg.Player.TieBreak)
		if dir != 0 {
			player.Facing = dir
		}
		motion.Velocity.X = gamemath.Locomote(motion.Velocity.X, dir, dt, cfg.Player.Movement())

		wasGrounded := motion.Grounded
		motion.Velocity.Y = gamemath.IntegrateVertical(
			motion.Velocity.Y, wasGrounded, jump,
			world.Gravity(), -cfg.Player.JumpSpeed, dt,
		)
		if jump && wasGrounded {
			player.Jumps++
			log.Debug("player jumped", "x", obj.X, "y", obj.Y, "jumps", player.Jumps)
		}

		motion.Grounded = world.MoveKinematic(obj, body.Body, motion.Velocity.X*dt, motion.Velocity.Y*dt, dt)

		updatePlayerSprite(e, player, motion, dt)
	})
}

func updatePlayerSprite(e *donburi.Entry, player *components.PlayerData, motion *components.MotionData, dt float64) {
	anim := components.Animation.Get(e)
	sprite := components.Sprite.Get(e)

	walking := motion.Grounded && motion.Velocity.X != 0
	if anim.CurrentAnimation != nil {
		if walking {
			anim.CurrentAnimation.Update(dt)
		} else if anim.Playing {
			anim.CurrentAnimation.Restart()
		}
		anim.Playing = walking
		sprite.Image = assets.PlayerFrame(anim.CurrentAnimation.Frame())
	}

	sprite.FlipX = player.Facing < 0
}
