package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/bombspot/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// DefaultLevel is the embedded level loaded when none is given.
const DefaultLevel = "sandbox"

// LoadLevel resolves name to a level. A name ending in .tmx is read from
// disk; anything else is looked up among the embedded levels.
func LoadLevel(name string) (*leveldata.Level, error) {
	if name == "" {
		name = DefaultLevel
	}
	if strings.HasSuffix(name, ".tmx") {
		if _, err := os.Stat(name); err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		return leveldata.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return leveldata.Load(levelFS, "levels/"+name+".tmx")
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAll(levelFS, "levels")
	return names, err
}

const (
	PlayerFrameWidth  = 12
	PlayerFrameHeight = 16
	PlayerFrames      = 2
)

type imageCache struct {
	cache map[string]*ebiten.Image
}

func (c *imageCache) get(key string, build func() *ebiten.Image) *ebiten.Image {
	if img, ok := c.cache[key]; ok {
		return img
	}
	img := build()
	c.cache[key] = img
	return img
}

var images = &imageCache{cache: make(map[string]*ebiten.Image)}

var (
	skin  = color.RGBA{R: 240, G: 200, B: 160, A: 255}
	shirt = color.RGBA{R: 40, G: 120, B: 220, A: 255}
	pants = color.RGBA{R: 50, G: 50, B: 70, A: 255}
)

// PlayerSheet is the little guy: an idle frame and a stepping frame side by
// side, facing right.
func PlayerSheet() *ebiten.Image {
	return images.get("player", func() *ebiten.Image {
		img := ebiten.NewImage(PlayerFrameWidth*PlayerFrames, PlayerFrameHeight)
		for f := 0; f < PlayerFrames; f++ {
			ox := float32(f * PlayerFrameWidth)
			vector.FillRect(img, ox+3, 0, 6, 5, skin, false)  // head
			vector.FillRect(img, ox+7, 2, 1, 1, pants, false) // eye
			vector.FillRect(img, ox+2, 5, 8, 6, shirt, false) // body
			if f == 0 {
				vector.FillRect(img, ox+3, 11, 2, 5, pants, false)
				vector.FillRect(img, ox+7, 11, 2, 5, pants, false)
			} else {
				vector.FillRect(img, ox+1, 11, 2, 5, pants, false)
				vector.FillRect(img, ox+9, 11, 2, 5, pants, false)
			}
		}
		return img
	})
}

// PlayerFrame returns one frame of the player sheet.
func PlayerFrame(i int) *ebiten.Image {
	i = ((i % PlayerFrames) + PlayerFrames) % PlayerFrames
	sx := i * PlayerFrameWidth
	return PlayerSheet().SubImage(image.Rect(sx, 0, sx+PlayerFrameWidth, PlayerFrameHeight)).(*ebiten.Image)
}

// BallImage is a filled circle with a stripe so its spin is visible.
func BallImage(radius float64) *ebiten.Image {
	return images.get(fmt.Sprintf("ball/%g", radius), func() *ebiten.Image {
		size := int(radius*2) + 2
		img := ebiten.NewImage(size, size)
		c := float32(size) / 2
		vector.FillCircle(img, c, c, float32(radius), color.RGBA{R: 230, G: 230, B: 230, A: 255}, true)
		vector.StrokeLine(img, c-float32(radius)+1, c, c+float32(radius)-1, c, 2, color.RGBA{R: 200, G: 60, B: 60, A: 255}, true)
		return img
	})
}

// MarkerImage is a white square meant to be tinted.
func MarkerImage(size float64) *ebiten.Image {
	return images.get(fmt.Sprintf("marker/%g", size), func() *ebiten.Image {
		s := int(size)
		if s < 1 {
			s = 1
		}
		img := ebiten.NewImage(s, s)
		img.Fill(color.White)
		return img
	})
}
