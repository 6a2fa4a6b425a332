package factory

import (
	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/components"
	"github.com/automoto/bombspot/tuning"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTuning records where the tuning came from. watcher may be nil.
func CreateTuning(ecs *ecs.ECS, source string, watcher *tuning.Watcher) *donburi.Entry {
	entry := archetypes.Tuning.Spawn(ecs)
	components.Tuning.Set(entry, &components.TuningData{
		Source:  source,
		Watcher: watcher,
	})
	return entry
}
