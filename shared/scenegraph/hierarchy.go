// Package scenegraph holds the entity links the game and its tests share:
// parent/child attachment, draw visibility and sensor roles. It has no
// rendering dependency so it can be exercised against a plain donburi world.
package scenegraph

import "github.com/yohamta/donburi"

// Vector is a 2D offset in pixels.
type Vector struct {
	X, Y float64
}

// ParentData points a child at the entity it is attached to. Children sit at
// their parent's position plus Offset.
type ParentData struct {
	Entity donburi.Entity
	Offset Vector
}

var Parent = donburi.NewComponentType[ParentData]()

type ChildrenData struct {
	Entities []donburi.Entity
}

var Children = donburi.NewComponentType[ChildrenData]()

// maxDepth stops a broken parent chain from looping forever.
const maxDepth = 16

// Attach links child under parent. Both entries need the matching components.
func Attach(parent, child *donburi.Entry, offset Vector) {
	children := Children.Get(parent)
	children.Entities = append(children.Entities, child.Entity())
	Parent.Set(child, &ParentData{Entity: parent.Entity(), Offset: offset})
}

// Descendants returns e's live children, grandchildren and so on, deepest
// first, followed by e itself.
func Descendants(w donburi.World, e donburi.Entity) []donburi.Entity {
	var out []donburi.Entity
	var walk func(e donburi.Entity, depth int)
	walk = func(e donburi.Entity, depth int) {
		if !w.Valid(e) || depth >= maxDepth {
			return
		}
		entry := w.Entry(e)
		if entry.HasComponent(Children) {
			for _, child := range Children.Get(entry).Entities {
				walk(child, depth+1)
			}
		}
		out = append(out, e)
	}
	walk(e, 0)
	return out
}
