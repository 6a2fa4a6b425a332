package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is drawn centred on the entity's world position.
type SpriteData struct {
	Image    *ebiten.Image
	Rotation float64
	Scale    float64 // 0 means 1
	FlipX    bool
	Tint     color.RGBA
	Tinted   bool
	Layer    int // higher draws later
}

var Sprite = donburi.NewComponentType[SpriteData]()
