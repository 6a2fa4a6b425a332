package scenegraph

import (
	"testing"

	"github.com/automoto/bombspot/shared/sensor"
	"github.com/automoto/bombspot/tags"
	"github.com/yohamta/donburi"
)

type sandbox struct {
	world  donburi.World
	player *donburi.Entry
	placer *donburi.Entry
	ball   *donburi.Entry
	spot   *donburi.Entry
	bomb   *donburi.Entry
}

// newSandbox builds the player/placer and ball/spot/bomb trees the game
// spawns, with the bomb starting hidden.
func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	w := donburi.NewWorld()
	s := &sandbox{world: w}

	s.player = w.Entry(w.Create(tags.Player, Children, Visibility))
	Visibility.SetValue(s.player, VisibilityData{Mode: VisibilityVisible})
	s.placer = w.Entry(w.Create(tags.Placer, Sensor, Parent, Visibility))
	Sensor.SetValue(s.placer, SensorData{Role: sensor.RolePlacer, Radius: 16})
	Attach(s.player, s.placer, Vector{})

	s.ball = w.Entry(w.Create(tags.Ball, Children, Visibility))
	Visibility.SetValue(s.ball, VisibilityData{Mode: VisibilityVisible})
	s.spot = w.Entry(w.Create(tags.Spot, Sensor, Parent, Children, Visibility))
	Sensor.SetValue(s.spot, SensorData{Role: sensor.RoleSpot, Radius: 20})
	Attach(s.ball, s.spot, Vector{})
	s.bomb = w.Entry(w.Create(tags.Bomb, Parent, Visibility))
	Visibility.SetValue(s.bomb, VisibilityData{Mode: VisibilityHidden})
	Attach(s.spot, s.bomb, Vector{})

	return s
}

func (s *sandbox) event(kind sensor.Interaction) sensor.Event[donburi.Entity] {
	return sensor.Event[donburi.Entity]{A: s.placer.Entity(), B: s.spot.Entity(), Kind: kind}
}

func TestRouteEnterExit(t *testing.T) {
	s := newSandbox(t)
	if IsVisible(s.world, s.bomb) {
		t.Fatal("bomb should start hidden")
	}

	Route(s.world, []sensor.Event[donburi.Entity]{s.event(sensor.Entered)})
	if got := Visibility.Get(s.bomb).Mode; got != VisibilityInherited {
		t.Fatalf("mode after enter = %v, expected inherited", got)
	}
	if !IsVisible(s.world, s.bomb) {
		t.Fatal("bomb should show after the placer enters")
	}

	// Roles are looked up per entity, so the pair order does not matter.
	Route(s.world, []sensor.Event[donburi.Entity]{{A: s.spot.Entity(), B: s.placer.Entity(), Kind: sensor.Exited}})
	if IsVisible(s.world, s.bomb) {
		t.Fatal("bomb should hide after the placer leaves")
	}
}

func TestRouteAppliesBatchInOrder(t *testing.T) {
	tests := []struct {
		name  string
		kinds []sensor.Interaction
		want  bool
	}{
		{name: "flicker ends inside", kinds: []sensor.Interaction{sensor.Entered, sensor.Exited, sensor.Entered}, want: true},
		{name: "flicker ends outside", kinds: []sensor.Interaction{sensor.Entered, sensor.Exited}, want: false},
		{name: "repeated enter", kinds: []sensor.Interaction{sensor.Entered, sensor.Entered}, want: true},
		{name: "exit while hidden", kinds: []sensor.Interaction{sensor.Exited}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSandbox(t)
			var batch []sensor.Event[donburi.Entity]
			for _, k := range tt.kinds {
				batch = append(batch, s.event(k))
			}
			Route(s.world, batch)
			if got := IsVisible(s.world, s.bomb); got != tt.want {
				t.Fatalf("visible = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRouteRespectsHiddenAncestor(t *testing.T) {
	s := newSandbox(t)
	Visibility.SetValue(s.ball, VisibilityData{Mode: VisibilityHidden})

	Route(s.world, []sensor.Event[donburi.Entity]{s.event(sensor.Entered)})
	if got := Visibility.Get(s.bomb).Mode; got != VisibilityInherited {
		t.Fatalf("mode after enter = %v, expected inherited", got)
	}
	if IsVisible(s.world, s.bomb) {
		t.Fatal("a hidden ball must keep its bomb hidden")
	}
}

func TestRouteIgnoresOtherPairs(t *testing.T) {
	tests := []struct {
		name string
		pair func(s *sandbox) (donburi.Entity, donburi.Entity)
	}{
		{name: "ball and placer", pair: func(s *sandbox) (donburi.Entity, donburi.Entity) {
			return s.ball.Entity(), s.placer.Entity()
		}},
		{name: "player and spot", pair: func(s *sandbox) (donburi.Entity, donburi.Entity) {
			return s.player.Entity(), s.spot.Entity()
		}},
		{name: "spot and spot", pair: func(s *sandbox) (donburi.Entity, donburi.Entity) {
			return s.spot.Entity(), s.spot.Entity()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSandbox(t)
			a, b := tt.pair(s)
			Route(s.world, []sensor.Event[donburi.Entity]{{A: a, B: b, Kind: sensor.Entered}})
			if got := Visibility.Get(s.bomb).Mode; got != VisibilityHidden {
				t.Fatalf("bomb mode = %v, expected hidden", got)
			}
		})
	}
}

func TestRouteSkipsRemovedEntities(t *testing.T) {
	s := newSandbox(t)
	spot := s.spot.Entity()
	s.world.Remove(spot)

	Route(s.world, []sensor.Event[donburi.Entity]{{A: s.placer.Entity(), B: spot, Kind: sensor.Entered}})
	bomb := s.world.Entry(s.bomb.Entity())
	if got := Visibility.Get(bomb).Mode; got != VisibilityHidden {
		t.Fatalf("bomb mode = %v, expected hidden", got)
	}
}

func TestMarkersOnlyBombChildren(t *testing.T) {
	s := newSandbox(t)
	other := s.world.Entry(s.world.Create(Parent, Visibility))
	Visibility.SetValue(other, VisibilityData{Mode: VisibilityHidden})
	Attach(s.spot, other, Vector{X: 4})

	markers := Targets{World: s.world}.Markers(s.spot.Entity())
	if len(markers) != 1 || markers[0] != s.bomb.Entity() {
		t.Fatalf("markers = %v, expected only the bomb", markers)
	}

	Route(s.world, []sensor.Event[donburi.Entity]{s.event(sensor.Entered)})
	if got := Visibility.Get(other).Mode; got != VisibilityHidden {
		t.Fatalf("untagged child mode = %v, expected hidden", got)
	}
}

func TestIsVisible(t *testing.T) {
	w := donburi.NewWorld()

	bare := w.Entry(w.Create(Visibility))
	if !IsVisible(w, bare) {
		t.Error("a root without a parent should be shown")
	}

	orphan := w.Entry(w.Create(Parent, Visibility))
	gone := w.Create(Visibility)
	w.Remove(gone)
	Parent.SetValue(orphan, ParentData{Entity: gone})
	if !IsVisible(w, orphan) {
		t.Error("a child of a removed parent should be shown")
	}

	loop := w.Entry(w.Create(Parent, Visibility))
	Parent.SetValue(loop, ParentData{Entity: loop.Entity()})
	if !IsVisible(w, loop) {
		t.Error("a self-parented entity should stop walking and be shown")
	}

	forced := w.Entry(w.Create(Parent, Visibility))
	hidden := w.Entry(w.Create(Visibility))
	Visibility.SetValue(hidden, VisibilityData{Mode: VisibilityHidden})
	Visibility.SetValue(forced, VisibilityData{Mode: VisibilityVisible})
	Parent.SetValue(forced, ParentData{Entity: hidden.Entity()})
	if !IsVisible(w, forced) {
		t.Error("Visible should stop the walk before a hidden parent")
	}
}

func TestDescendants(t *testing.T) {
	s := newSandbox(t)

	got := Descendants(s.world, s.ball.Entity())
	want := []donburi.Entity{s.bomb.Entity(), s.spot.Entity(), s.ball.Entity()}
	if len(got) != len(want) {
		t.Fatalf("descendants = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("descendant %d = %v, expected %v", i, got[i], want[i])
		}
	}

	s.world.Remove(s.ball.Entity())
	if got := Descendants(s.world, s.ball.Entity()); len(got) != 0 {
		t.Fatalf("removed root should have no descendants, got %v", got)
	}
}
