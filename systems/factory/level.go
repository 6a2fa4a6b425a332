package factory

import (
	"fmt"

	"github.com/automoto/bombspot/archetypes"
	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named level (see assets.LoadLevel) into a Level
// entity.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	lvl, err := assets.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("create level %q: %w", name, err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{CurrentLevel: lvl})
	return level, nil
}
