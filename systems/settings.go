package systems

import (
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the Settings singleton, seeded from the
// current debug config the first time.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.Set(entry, &components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted toggles into the config and window.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Overlay = cfg.Debug.Overlay || saved.Debug
	ebiten.SetFullscreen(saved.Fullscreen)
}

// UpdateSettings handles the debug overlay and fullscreen toggles.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		ToggleDebug(ecs)
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		ToggleFullscreen(ecs)
	}
}

// ToggleDebug flips the debug overlay and saves the choice.
func ToggleDebug(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	cfg.Debug.Overlay = settings.Debug
	log.Info("debug overlay toggled", "on", settings.Debug)
	saveCurrentSettings(settings)
}

// ToggleFullscreen flips fullscreen and saves the choice.
func ToggleFullscreen(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Fullscreen = !settings.Fullscreen
	ebiten.SetFullscreen(settings.Fullscreen)
	saveCurrentSettings(settings)
}

func saveCurrentSettings(s *components.SettingsData) {
	saveSettingsOrWarn(&SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	})
}
