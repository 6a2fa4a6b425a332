package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Snapped  bool // first update jumps straight to the target
}

var Camera = donburi.NewComponentType[CameraData]()
