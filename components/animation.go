package components

import (
	"github.com/automoto/bombspot/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	Playing          bool
}

var Animation = donburi.NewComponentType[AnimationData]()
