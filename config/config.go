package config

import (
	"image/color"

	"github.com/automoto/bombspot/shared/gamemath"
	"github.com/automoto/bombspot/tuning"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, in pixels per second
	Acceleration float64
	Deceleration float64
	MaxSpeed     float64
	JumpSpeed    float64

	// Which way wins when left and right are both held
	TieBreak gamemath.TieBreak

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// Movement returns the horizontal movement constants.
func (p PlayerConfig) Movement() gamemath.Movement {
	return gamemath.Movement{
		Acceleration: p.Acceleration,
		Deceleration: p.Deceleration,
		MaxSpeed:     p.MaxSpeed,
	}
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity       float64 // pixels per second squared, downward
	PixelsPerUnit float64
	CellSize      int // resolv broadphase cell
}

// BallConfig contains the dynamic ball's material and controls
type BallConfig struct {
	Radius      float64
	Restitution float64
	Friction    float64
	Damping     float64
	HopImpulse  float64 // added upward velocity per hop
	SpinStep    float64 // angular velocity change per tick held
}

// SensorConfig contains proximity sensor sizes
type SensorConfig struct {
	PlacerRadius float64
	SpotRadius   float64
}

// MarkerConfig contains the bomb marker's look
type MarkerConfig struct {
	Size        float64
	Color       color.RGBA
	PulseMin    float64
	PulseMax    float64
	PulsePeriod float64 // seconds for one grow/shrink cycle
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	OffsetY         float64 // Look slightly above the player
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay       bool // Draw collider outlines and readouts
	LogAltitude   bool // Log the ball altitude every AltitudeEvery ticks
	AltitudeEvery int
}

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	Title       string
	Background  color.RGBA
	WindowScale int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Ball BallConfig
var Sensor SensorConfig
var Marker MarkerConfig
var Camera CameraConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGray  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Overlay   = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:       640,
		Height:      360,
		Title:       "bombspot",
		Background:  Gray,
		WindowScale: 2,
	}

	Physics = PhysicsConfig{
		PixelsPerUnit: 8.0,
		CellSize:      16,
	}

	Player = PlayerConfig{
		CollisionWidth:  12,
		CollisionHeight: 16,
	}

	Marker = MarkerConfig{
		Color: Red,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		OffsetY:         -24,
	}

	// Debug Config (defaults, can be overridden by CLI flags and saved settings)
	Debug = DebugConfig{
		Overlay:       false,
		LogAltitude:   false,
		AltitudeEvery: 30,
	}

	ApplyTuning(tuning.Default())
}

// ApplyTuning copies the tunable values into the globals. The tuning must
// already be validated.
func ApplyTuning(t tuning.Tuning) {
	tie, _ := gamemath.ParseTieBreak(t.Player.TieBreak)

	Player.Acceleration = t.Player.Acceleration
	Player.Deceleration = t.Player.Deceleration
	Player.MaxSpeed = t.Player.MaxSpeed
	Player.JumpSpeed = t.Player.JumpSpeed
	Player.TieBreak = tie

	Physics.Gravity = t.Physics.Gravity

	Ball = BallConfig{
		Radius:      t.Ball.Radius,
		Restitution: t.Ball.Restitution,
		Friction:    t.Ball.Friction,
		Damping:     t.Ball.Damping,
		HopImpulse:  t.Ball.HopImpulse,
		SpinStep:    t.Ball.SpinStep,
	}

	Sensor = SensorConfig{
		PlacerRadius: t.Sensors.PlacerRadius,
		SpotRadius:   t.Sensors.SpotRadius,
	}

	Marker.Size = t.Marker.Size
	Marker.PulseMin = t.Marker.PulseMin
	Marker.PulseMax = t.Marker.PulseMax
	Marker.PulsePeriod = t.Marker.PulsePeriod
}
