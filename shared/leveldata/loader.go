package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	defaultFriction    = 0.5
	defaultRestitution = 0.5
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// levels or os.DirFS for a level on disk.
//
// Solids come from the "Solids" object group and from filled tiles of the
// "wg-tiles" layer. The first "PlayerSpawn" object is the player and every
// "BallSpawn" object is a ball.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &Level{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		CellSize:  levelMap.TileWidth,
	}

	// Solid tiles from wg-tiles layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "wg-tiles" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Solids = append(data.Solids, SolidRect{
					X:           float64(x) * tileW,
					Y:           float64(y) * tileH,
					W:           tileW,
					H:           tileH,
					Friction:    defaultFriction,
					Restitution: defaultRestitution,
				})
			}
		}
		break
	}

	var players []SpawnPoint
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Solids = append(data.Solids, SolidRect{
					Name:        o.Name,
					X:           o.X,
					Y:           o.Y,
					W:           o.Width,
					H:           o.Height,
					Friction:    floatProperty(o.Properties, "friction", defaultFriction),
					Restitution: floatProperty(o.Properties, "restitution", defaultRestitution),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				players = append(players, SpawnPoint{X: o.X, Y: o.Y})
			}
		case "BallSpawn":
			for _, o := range og.Objects {
				data.BallSpawns = append(data.BallSpawns, SpawnPoint{
					X:        o.X,
					Y:        o.Y,
					BombSpot: boolProperty(o.Properties, "bombSpot", true),
				})
			}
		}
	}

	if len(players) == 0 {
		return nil, fmt.Errorf("%s: %w: no PlayerSpawn object", tmxPath, ErrNoSpawn)
	}
	// Leftmost spawn wins so maps with several are deterministic
	sort.Slice(players, func(i, j int) bool {
		return players[i].X < players[j].X
	})
	data.PlayerSpawn = players[0]

	return data, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func floatProperty(props tiled.Properties, name string, def float64) float64 {
	for _, p := range props {
		if p.Name != name {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			return v
		}
	}
	return def
}

func boolProperty(props tiled.Properties, name string, def bool) bool {
	for _, p := range props {
		if p.Name != name {
			continue
		}
		if v, err := strconv.ParseBool(p.Value); err == nil {
			return v
		}
	}
	return def
}
