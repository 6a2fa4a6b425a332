package systems

import (
	"slices"

	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/shared/scenegraph"
	"github.com/automoto/bombspot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp       = &ebiten.DrawImageOptions{}
	shaderOp     = &ebiten.DrawRectShaderOptions{}
	spriteQueue  []queuedSprite
	tintUniforms = map[string]any{"Tint": []float32{1, 1, 1, 1}}
)

type queuedSprite struct {
	sprite *components.SpriteData
	x, y   float64
}

// cameraOffset is the translation from world to screen pixels.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel fills the static solids.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), cfg.DarkGray, false)
	})
}

// DrawSprites draws every visible sprite centred on its entity, lower layers
// first. Tinted sprites go through the tint shader.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	spriteQueue = spriteQueue[:0]
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil || !scenegraph.IsVisible(ecs.World, e) {
			return
		}
		x, y, ok := worldPosition(ecs.World, e)
		if !ok {
			return
		}
		spriteQueue = append(spriteQueue, queuedSprite{sprite: sprite, x: x + camX, y: y + camY})
	})
	slices.SortStableFunc(spriteQueue, func(a, b queuedSprite) int {
		return a.sprite.Layer - b.sprite.Layer
	})

	for _, q := range spriteQueue {
		drawSprite(screen, q)
	}
}

func drawSprite(screen *ebiten.Image, q queuedSprite) {
	s := q.sprite
	w, h := s.Image.Bounds().Dx(), s.Image.Bounds().Dy()

	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	scaleX := scale
	if s.FlipX {
		scaleX = -scale
	}

	if s.Tinted && assets.TintShader != nil {
		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		shaderOp.GeoM.Scale(scaleX, scale)
		shaderOp.GeoM.Rotate(s.Rotation)
		shaderOp.GeoM.Translate(q.x, q.y)
		shaderOp.Images[0] = s.Image
		tint := tintUniforms["Tint"].([]float32)
		tint[0] = float32(s.Tint.R) / 255
		tint[1] = float32(s.Tint.G) / 255
		tint[2] = float32(s.Tint.B) / 255
		tint[3] = float32(s.Tint.A) / 255
		shaderOp.Uniforms = tintUniforms
		screen.DrawRectShader(w, h, assets.TintShader, shaderOp)
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	drawOp.GeoM.Scale(scaleX, scale)
	drawOp.GeoM.Rotate(s.Rotation)
	drawOp.GeoM.Translate(q.x, q.y)
	if s.Tinted {
		drawOp.ColorScale.ScaleWithColor(s.Tint)
	}
	screen.DrawImage(s.Image, drawOp)
}
