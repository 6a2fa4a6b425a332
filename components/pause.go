package components

import "github.com/yohamta/donburi"

// PauseData stores whether the simulation is frozen behind the pause panel
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
