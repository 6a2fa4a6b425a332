// Package sensor turns raw physics contacts into placement events.
//
// The physics layer reports every begin/stop transition it sees. Only
// transitions involving a sensor shape become Events, and only Events
// between one Placer and one Spot change anything: the Spot's markers are
// shown on Entered and hidden on Exited.
package sensor

// Role tags an entity for sensor routing. Roles never change once assigned.
type Role int

const (
	RoleNone Role = iota
	RolePlacer
	RoleSpot
)

func (r Role) String() string {
	switch r {
	case RolePlacer:
		return "placer"
	case RoleSpot:
		return "spot"
	default:
		return "none"
	}
}

// Interaction is the kind of sensor transition.
type Interaction int

const (
	Entered Interaction = iota
	Exited
)

func (i Interaction) String() string {
	if i == Exited {
		return "exited"
	}
	return "entered"
}

// Collision is a raw contact transition reported by the physics layer.
type Collision[E comparable] struct {
	A, B   E
	Began  bool
	Sensor bool // at least one participant is a sensor
}

// Event is a sensor transition between two entities.
type Event[E comparable] struct {
	A, B E
	Kind Interaction
}

// Diverge keeps the sensor transitions of records, in order, as Events.
// Flickering contacts produce one event per transition.
func Diverge[E comparable](records []Collision[E]) []Event[E] {
	var out []Event[E]
	for _, r := range records {
		if !r.Sensor {
			continue
		}
		kind := Exited
		if r.Began {
			kind = Entered
		}
		out = append(out, Event[E]{A: r.A, B: r.B, Kind: kind})
	}
	return out
}

// Classify reports whether a pair of roles is a Placer and a Spot, and if
// so whether the Spot is the second one.
func Classify(a, b Role) (spotIsB bool, ok bool) {
	switch {
	case a == RolePlacer && b == RoleSpot:
		return true, true
	case a == RoleSpot && b == RolePlacer:
		return false, true
	}
	return false, false
}

// Visible is the marker visibility an interaction leads to.
func Visible(kind Interaction) bool {
	return kind == Entered
}

// Targets is the world view the router reads roles from and writes
// visibility to. Unknown entities report RoleNone.
type Targets[E comparable] interface {
	Role(e E) Role
	Markers(spot E) []E
	SetVisible(e E, visible bool)
}

// Route applies events to t in order. Visibility is assigned, so repeated
// events are harmless. Events that are not a Placer/Spot pair are dropped.
func Route[E comparable](t Targets[E], events []Event[E]) {
	for _, evt := range events {
		RouteOne(t, evt)
	}
}

// RouteOne applies a single event and reports whether it matched.
func RouteOne[E comparable](t Targets[E], evt Event[E]) bool {
	spotIsB, ok := Classify(t.Role(evt.A), t.Role(evt.B))
	if !ok {
		return false
	}
	spot := evt.A
	if spotIsB {
		spot = evt.B
	}
	visible := Visible(evt.Kind)
	for _, m := range t.Markers(spot) {
		t.SetVisible(m, visible)
	}
	return true
}
