package systems

import (
	"github.com/automoto/bombspot/components"
	"github.com/yohamta/donburi"
)

// maxHierarchyDepth stops a broken parent chain from looping forever.
const maxHierarchyDepth = 16

// worldPosition is where an entity sits: its collider centre, or its
// parent's position plus its offset.
func worldPosition(w donburi.World, e *donburi.Entry) (x, y float64, ok bool) {
	var offX, offY float64
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		switch {
		case e.HasComponent(components.Object):
			obj := components.Object.Get(e)
			return obj.X + obj.W/2 + offX, obj.Y + obj.H/2 + offY, true
		case e.HasComponent(components.Body):
			if body := components.Body.Get(e).Body; body != nil {
				p := body.Position()
				return p.X + offX, p.Y + offY, true
			}
			return 0, 0, false
		case e.HasComponent(components.Parent):
			parent := components.Parent.Get(e)
			offX += parent.Offset.X
			offY += parent.Offset.Y
			if !w.Valid(parent.Entity) {
				return 0, 0, false
			}
			e = w.Entry(parent.Entity)
		default:
			return 0, 0, false
		}
	}
	return 0, 0, false
}
