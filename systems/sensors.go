package systems

import (
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeSensorRouting wires SensorEvents to marker visibility for w.
// Call once per world.
func SubscribeSensorRouting(w donburi.World) {
	SensorEvents.Subscribe(w, func(w donburi.World, batch []sensor.Event[donburi.Entity]) {
		scenegraph.Route(w, batch)
	})
}

// UpdateSensors delivers the queued sensor events. Runs right after
// UpdatePhysics so markers change in the same tick as the contact.
func UpdateSensors(ecs *ecs.ECS) {
	SensorEvents.ProcessEvents(ecs.World)
}
