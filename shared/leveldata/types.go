// Package leveldata parses sandbox levels from Tiled maps.
// It has no dependencies on ebitengine, donburi, or resolv — pure data only.
package leveldata

import "errors"

// ErrNoSpawn is returned when a level lacks a required spawn point.
var ErrNoSpawn = errors.New("leveldata: missing spawn point")

// Level holds everything the sandbox needs from a TMX file.
type Level struct {
	Name        string
	Solids      []SolidRect
	PlayerSpawn SpawnPoint
	BallSpawns  []SpawnPoint
	MapWidth    int
	MapHeight   int
	CellSize    int
}

// SolidRect is a static collider in world pixels.
type SolidRect struct {
	Name        string
	X, Y, W, H  float64
	Friction    float64
	Restitution float64
}

// SpawnPoint is the centre of a spawned body.
type SpawnPoint struct {
	X, Y float64
	// BombSpot marks a ball that carries a placement spot.
	BombSpot bool
}
