package scenegraph

import (
	"github.com/automoto/bombspot/shared/sensor"
	"github.com/automoto/bombspot/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// SensorData marks a proximity sensor. The role is fixed at spawn.
type SensorData struct {
	Role   sensor.Role
	Radius float64
	Shape  *cp.Shape
}

var Sensor = donburi.NewComponentType[SensorData]()

// Targets reads roles and writes visibility on live entities. Entities that
// no longer exist have no role and no markers.
type Targets struct {
	World donburi.World
}

// Route applies a tick's sensor events to w in order.
func Route(w donburi.World, events []sensor.Event[donburi.Entity]) {
	sensor.Route[donburi.Entity](Targets{World: w}, events)
}

func (t Targets) entry(e donburi.Entity) (*donburi.Entry, bool) {
	if !t.World.Valid(e) {
		return nil, false
	}
	return t.World.Entry(e), true
}

func (t Targets) Role(e donburi.Entity) sensor.Role {
	entry, ok := t.entry(e)
	if !ok || !entry.HasComponent(Sensor) {
		return sensor.RoleNone
	}
	return Sensor.Get(entry).Role
}

// Markers are the spot's children tagged as bombs.
func (t Targets) Markers(spot donburi.Entity) []donburi.Entity {
	entry, ok := t.entry(spot)
	if !ok || !entry.HasComponent(Children) {
		return nil
	}
	var markers []donburi.Entity
	for _, child := range Children.Get(entry).Entities {
		if c, ok := t.entry(child); ok && c.HasComponent(tags.Bomb) {
			markers = append(markers, child)
		}
	}
	return markers
}

// SetVisible hides a marker, or hands it back to its parent's visibility.
func (t Targets) SetVisible(e donburi.Entity, visible bool) {
	entry, ok := t.entry(e)
	if !ok || !entry.HasComponent(Visibility) {
		return
	}
	mode := VisibilityHidden
	if visible {
		mode = VisibilityInherited
	}
	Visibility.Get(entry).Mode = mode
}
