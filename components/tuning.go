package components

import (
	"github.com/automoto/bombspot/tuning"
	"github.com/yohamta/donburi"
)

// TuningData tracks where the active tuning came from and the watcher that
// reports edits to it.
type TuningData struct {
	Source  string
	Watcher *tuning.Watcher
	Reloads int
}

var Tuning = donburi.NewComponentType[TuningData]()
