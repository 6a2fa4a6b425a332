package scenegraph

import "github.com/yohamta/donburi"

// VisibilityMode controls whether an entity is drawn.
type VisibilityMode int

const (
	// VisibilityInherited draws the entity when its parent is drawn.
	VisibilityInherited VisibilityMode = iota
	VisibilityHidden
	VisibilityVisible
)

func (v VisibilityMode) String() string {
	switch v {
	case VisibilityHidden:
		return "hidden"
	case VisibilityVisible:
		return "visible"
	default:
		return "inherited"
	}
}

type VisibilityData struct {
	Mode VisibilityMode
}

var Visibility = donburi.NewComponentType[VisibilityData]()

// IsVisible resolves an entity's effective visibility. Hidden anywhere up
// the chain hides it; Visible stops the walk; Inherited defers to the
// parent, and an entity without a parent is shown.
func IsVisible(w donburi.World, e *donburi.Entry) bool {
	for depth := 0; depth < maxDepth; depth++ {
		if e.HasComponent(Visibility) {
			switch Visibility.Get(e).Mode {
			case VisibilityHidden:
				return false
			case VisibilityVisible:
				return true
			}
		}
		if !e.HasComponent(Parent) {
			return true
		}
		parent := Parent.Get(e).Entity
		if !w.Valid(parent) {
			return true
		}
		e = w.Entry(parent)
	}
	return true
}
