package systems

import (
	"math"

	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, keeping the view inside
// the level. The first update snaps so the scene does not open with a pan.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2 + config.Camera.OffsetY

	if levelEntry, ok := components.Level.First(e.World); ok {
		if level := components.Level.Get(levelEntry).CurrentLevel; level != nil {
			targetX = clampAxis(targetX, float64(config.C.Width), float64(level.MapWidth))
			targetY = clampAxis(targetY, float64(config.C.Height), float64(level.MapHeight))
		}
	}

	if !camera.Snapped {
		camera.Position.X = targetX
		camera.Position.Y = targetY
		camera.Snapped = true
		return
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a view of size view centred inside [0, extent]. A level
// smaller than the view is centred instead.
func clampAxis(target, view, extent float64) float64 {
	if extent <= view {
		return extent / 2
	}
	return math.Max(view/2, math.Min(extent-view/2, target))
}
