package factory

import (
	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/assets/animations"
	"github.com/automoto/bombspot/components"
)

// walkFrameTime is how long each step of the walk cycle is held, in seconds.
const walkFrameTime = 0.15

// GenerateAnimations builds the player's walk cycle over the whole sheet.
func GenerateAnimations() *components.AnimationData {
	return &components.AnimationData{
		CurrentAnimation: animations.NewAnimation(0, assets.PlayerFrames-1, 1, walkFrameTime),
	}
}
