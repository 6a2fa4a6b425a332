package components

import "github.com/automoto/bombspot/shared/scenegraph"

type VisibilityMode = scenegraph.VisibilityMode
type VisibilityData = scenegraph.VisibilityData

const (
	VisibilityInherited = scenegraph.VisibilityInherited
	VisibilityHidden    = scenegraph.VisibilityHidden
	VisibilityVisible   = scenegraph.VisibilityVisible
)

var Visibility = scenegraph.Visibility
