package leveldata

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"
)

func TestLoadSandbox(t *testing.T) {
	level, err := Load(os.DirFS("../../assets"), "levels/sandbox.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "sandbox" {
		t.Errorf("Name = %q, want sandbox", level.Name)
	}
	if level.MapWidth != 1280 || level.MapHeight != 480 {
		t.Errorf("map size = %dx%d, want 1280x480", level.MapWidth, level.MapHeight)
	}
	if level.CellSize != 16 {
		t.Errorf("CellSize = %d, want 16", level.CellSize)
	}

	want := []SolidRect{
		{Name: "ground", X: 140, Y: 350, W: 1000, H: 100, Friction: 0.5, Restitution: 0.5},
		{Name: "platform", X: 440, Y: 324, W: 400, H: 24, Friction: 0.5, Restitution: 0.5},
	}
	if len(level.Solids) != len(want) {
		t.Fatalf("got %d solids, want %d", len(level.Solids), len(want))
	}
	for i := range want {
		if level.Solids[i] != want[i] {
			t.Errorf("solid %d = %+v, want %+v", i, level.Solids[i], want[i])
		}
	}

	if level.PlayerSpawn != (SpawnPoint{X: 760, Y: 240}) {
		t.Errorf("PlayerSpawn = %+v", level.PlayerSpawn)
	}
	if len(level.BallSpawns) != 1 || level.BallSpawns[0] != (SpawnPoint{X: 640, Y: 100, BombSpot: true}) {
		t.Errorf("BallSpawns = %+v", level.BallSpawns)
	}
}

const tileMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="8" tileheight="8" infinite="0">
 <tileset firstgid="1" name="solid" tilewidth="8" tileheight="8" tilecount="1" columns="1">
  <image source="solid.png" width="8" height="8"/>
 </tileset>
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="20" y="4"><point/></object>
  <object id="2" x="4" y="4"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="BallSpawn">
  <object id="3" x="12" y="4">
   <properties>
    <property name="bombSpot" type="bool" value="false"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>`

func TestLoadTileLayer(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiles.tmx": {Data: []byte(tileMap)},
	}

	level, err := Load(fsys, "levels/tiles.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantX := []float64{0, 8, 24}
	if len(level.Solids) != len(wantX) {
		t.Fatalf("got %d solids, want %d", len(level.Solids), len(wantX))
	}
	for i, x := range wantX {
		s := level.Solids[i]
		if s.X != x || s.Y != 16 || s.W != 8 || s.H != 8 {
			t.Errorf("solid %d = %+v, want x=%v y=16 8x8", i, s, x)
		}
	}

	if level.PlayerSpawn.X != 4 {
		t.Errorf("expected leftmost player spawn, got %+v", level.PlayerSpawn)
	}
	if len(level.BallSpawns) != 1 || level.BallSpawns[0].BombSpot {
		t.Errorf("BallSpawns = %+v, want one without a bomb spot", level.BallSpawns)
	}
}

func TestLoadMissingSpawn(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="1" x="0" y="16" width="32" height="16"/>
 </objectgroup>
</map>`)},
	}

	_, err := Load(fsys, "empty.tmx")
	if !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(os.DirFS("../../assets"), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) == 0 || names[0] != "sandbox" {
		t.Fatalf("names = %v", names)
	}
	if levels["sandbox"] == nil {
		t.Fatal("sandbox level missing from map")
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Fatal("expected an error for an empty directory")
	}
}
