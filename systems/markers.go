package systems

import (
	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMarkers pulses markers while they are shown. A marker that gets
// hidden restarts its pulse so it always pops in from the small end.
func UpdateMarkers(ecs *ecs.ECS) {
	dt := float32(tickDelta())

	components.Pulse.Each(ecs.World, func(e *donburi.Entry) {
		pulse := components.Pulse.Get(e)
		if pulse.Sequence == nil {
			return
		}

		if !scenegraph.IsVisible(ecs.World, e) {
			if pulse.Active {
				pulse.Sequence.Reset()
				pulse.Active = false
			}
			return
		}

		scale, _, seqDone := pulse.Sequence.Update(dt)
		if seqDone {
			pulse.Sequence.Reset()
		}
		pulse.Scale = float64(scale)
		pulse.Active = true

		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Scale = pulse.Scale
		}
	})
}
