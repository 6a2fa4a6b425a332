package systems

import (
	"fmt"
	"path/filepath"

	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/tuning"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTuning applies edits to the watched tuning file between ticks. A
// file that fails to load or validate is reported and the old values stay.
// Sizes (ball radius, sensor radii) only affect bodies spawned afterwards.
func UpdateTuning(ecs *ecs.ECS) {
	entry, ok := components.Tuning.First(ecs.World)
	if !ok {
		return
	}
	data := components.Tuning.Get(entry)
	if data.Watcher == nil {
		return
	}

	select {
	case err, ok := <-data.Watcher.Errors:
		if ok {
			log.Warn("tuning watcher error", "err", err)
		}
	default:
	}

	path, changed := data.Watcher.Poll()
	if !changed {
		return
	}

	t, source, err := tuning.Load(path)
	if err != nil {
		log.Warn("tuning reload rejected", "path", path, "err", err)
		return
	}

	cfg.ApplyTuning(t)
	data.Source = source
	data.Reloads++

	if world, ok := physicsWorld(ecs); ok {
		world.SetGravity(cfg.Physics.Gravity)
	}
	components.Ball.Each(ecs.World, func(e *donburi.Entry) {
		if shape := components.Body.Get(e).Shape; shape != nil {
			shape.SetElasticity(cfg.Ball.Restitution)
			shape.SetFriction(cfg.Ball.Friction)
		}
	})

	log.Info("tuning reloaded", "path", source, "reloads", data.Reloads, "gravity", cfg.Physics.Gravity)
}

// TuningSummary is a short description of the active tuning for overlays.
func TuningSummary(ecs *ecs.ECS) string {
	source := "built-in"
	reloads := 0
	if entry, ok := components.Tuning.First(ecs.World); ok {
		data := components.Tuning.Get(entry)
		if data.Source != "" {
			source = filepath.Base(data.Source)
		}
		reloads = data.Reloads
	}
	return fmt.Sprintf("tuning %s, %d reloads\nspeed %.0f  jump %.0f  gravity %.2f  tie %s",
		source, reloads,
		cfg.Player.MaxSpeed, cfg.Player.JumpSpeed, cfg.Physics.Gravity, cfg.Player.TieBreak)
}
