// Package tuning loads the gameplay constants from YAML.
package tuning

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var defaultYAML []byte

// FileName is the tuning file looked up in config directories.
const FileName = "tuning.yaml"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("tuning: invalid value")

type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Physics PhysicsTuning `yaml:"physics"`
	Ball    BallTuning    `yaml:"ball"`
	Sensors SensorTuning  `yaml:"sensors"`
	Marker  MarkerTuning  `yaml:"marker"`
}

type PlayerTuning struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	TieBreak     string  `yaml:"tie_break"`
}

type PhysicsTuning struct {
	Gravity float64 `yaml:"gravity"`
}

type BallTuning struct {
	Radius      float64 `yaml:"radius"`
	Restitution float64 `yaml:"restitution"`
	Friction    float64 `yaml:"friction"`
	Damping     float64 `yaml:"damping"`
	HopImpulse  float64 `yaml:"hop_impulse"`
	SpinStep    float64 `yaml:"spin_step"`
}

type SensorTuning struct {
	PlacerRadius float64 `yaml:"placer_radius"`
	SpotRadius   float64 `yaml:"spot_radius"`
}

type MarkerTuning struct {
	Size        float64 `yaml:"size"`
	PulseMin    float64 `yaml:"pulse_min"`
	PulseMax    float64 `yaml:"pulse_max"`
	PulsePeriod float64 `yaml:"pulse_period"`
}

// Default returns the embedded tuning.
func Default() Tuning {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("tuning: embedded default is broken: %v", err))
	}
	return t
}

// Parse decodes YAML on top of zero values and validates the result.
func Parse(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("tuning: parse: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Load resolves the tuning file.
// Search order: customPath -> user config dir -> ./configs -> embedded default.
// Only a broken custom path is an error; other broken files are logged and
// skipped.
func Load(customPath string) (Tuning, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Tuning{}, "", fmt.Errorf("tuning: read %s: %w", customPath, err)
		}
		t, err := Parse(data)
		if err != nil {
			return Tuning{}, "", fmt.Errorf("tuning: %s: %w", customPath, err)
		}
		return t, customPath, nil
	}

	for _, p := range searchPaths() {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		t, err := Parse(data)
		if err != nil {
			log.Warn("ignoring tuning file", "path", p, "err", err)
			continue
		}
		return t, p, nil
	}

	return Default(), "", nil
}

func searchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "bombspot", FileName))
	}
	return append(paths, filepath.Join("configs", FileName))
}

// Validate checks that rates, speeds and sizes are usable.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"player.acceleration", t.Player.Acceleration},
		{"player.deceleration", t.Player.Deceleration},
		{"player.max_speed", t.Player.MaxSpeed},
		{"player.jump_speed", t.Player.JumpSpeed},
		{"ball.radius", t.Ball.Radius},
		{"sensors.placer_radius", t.Sensors.PlacerRadius},
		{"sensors.spot_radius", t.Sensors.SpotRadius},
		{"marker.size", t.Marker.Size},
		{"marker.pulse_period", t.Marker.PulsePeriod},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if t.Physics.Gravity < 0 {
		return fmt.Errorf("%w: physics.gravity must not be negative, got %v", ErrInvalid, t.Physics.Gravity)
	}
	if t.Ball.Damping < 0 {
		return fmt.Errorf("%w: ball.damping must not be negative, got %v", ErrInvalid, t.Ball.Damping)
	}
	if t.Marker.PulseMin > t.Marker.PulseMax {
		return fmt.Errorf("%w: marker.pulse_min %v above pulse_max %v", ErrInvalid, t.Marker.PulseMin, t.Marker.PulseMax)
	}

	switch t.Player.TieBreak {
	case "", "right", "left", "cancel":
	default:
		return fmt.Errorf("%w: player.tie_break %q (want right, left or cancel)", ErrInvalid, t.Player.TieBreak)
	}
	return nil
}
