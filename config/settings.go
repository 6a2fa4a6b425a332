package config

// SettingsConfig contains persisted settings configuration
type SettingsConfig struct {
	AppName string // gdata application directory
	ItemKey string // gdata item holding the JSON payload
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "bombspot",
		ItemKey: "settings",
	}
}
