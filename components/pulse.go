package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PulseData scales a sprite up and down while the entity is shown.
type PulseData struct {
	Sequence *gween.Sequence
	Scale    float64
	Active   bool
}

var Pulse = donburi.NewComponentType[PulseData]()
