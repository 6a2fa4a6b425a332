package components

import (
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/yohamta/donburi"
)

type ParentData = scenegraph.ParentData
type ChildrenData = scenegraph.ChildrenData

var (
	Parent   = scenegraph.Parent
	Children = scenegraph.Children
)

// Attach links child under parent. Both entries need the matching components.
func Attach(parent, child *donburi.Entry, offset Vector) {
	scenegraph.Attach(parent, child, offset)
}
