package archetypes

import (
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Motion,
		components.Sprite,
		components.Animation,
		components.Children,
		components.Visibility,
	)
	Placer = newArchetype(
		tags.Placer,
		components.Sensor,
		components.Parent,
		components.Visibility,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Body,
		components.Sprite,
		components.Children,
		components.Visibility,
	)
	Spot = newArchetype(
		tags.Spot,
		components.Sensor,
		components.Parent,
		components.Children,
		components.Visibility,
	)
	Bomb = newArchetype(
		tags.Bomb,
		components.Parent,
		components.Sprite,
		components.Pulse,
		components.Visibility,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Tuning = newArchetype(
		components.Tuning,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
