package systems

import (
	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/physics"
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SensorEvents carries each tick's placement transitions from the physics
// step to the router, in the order the physics layer saw them.
var SensorEvents = events.NewEventType[[]sensor.Event[donburi.Entity]]()

// physicsWorld returns the scene's physics world, if one was created.
func physicsWorld(ecs *ecs.ECS) (*physics.World, bool) {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, false
	}
	world := components.Space.Get(entry).World
	return world, world != nil
}

// UpdatePhysics steps the dynamics space and publishes the sensor
// transitions it produced. Contacts without a sensor are dropped here.
func UpdatePhysics(ecs *ecs.ECS) {
	world, ok := physicsWorld(ecs)
	if !ok {
		return
	}

	world.Step(tickDelta())

	batch := sensor.Diverge(world.Drain())
	if len(batch) == 0 {
		return
	}
	for _, evt := range batch {
		log.Debug("sensor event", "a", evt.A, "b", evt.B, "kind", evt.Kind)
	}
	SensorEvents.Publish(ecs.World, batch)
}
