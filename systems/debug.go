package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/physics"
	"github.com/automoto/bombspot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines both collision spaces and prints a readout of the
// player and ball state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	world, ok := physicsWorld(ecs)
	if !ok {
		return
	}

	for _, obj := range world.Space().Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(physics.TagSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(physics.TagPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		}
		vector.StrokeRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), 1, c, false)
	}

	cp.DrawSpace(world.Chipmunk(), &chipmunkDrawer{screen: screen, dx: camX, dy: camY})

	drawReadout(ecs, screen)
}

func drawReadout(ecs *ecs.ECS, screen *ebiten.Image) {
	text := fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())

	if e, ok := tags.Player.First(ecs.World); ok {
		motion := components.Motion.Get(e)
		text += fmt.Sprintf("\nvel %.1f, %.1f grounded %v", motion.Velocity.X, motion.Velocity.Y, motion.Grounded)
	}
	if e, ok := tags.Ball.First(ecs.World); ok {
		if body := components.Body.Get(e).Body; body != nil {
			p := body.Position()
			text += fmt.Sprintf("\nball %.1f, %.1f spin %.2f", p.X, p.Y, body.AngularVelocity())
		}
	}
	text += "\n" + TuningSummary(ecs)

	ebitenutil.DebugPrintAt(screen, text, 4, cfg.C.Height-80)
}

// chipmunkDrawer renders chipmunk shapes shifted by the camera.
type chipmunkDrawer struct {
	screen *ebiten.Image
	dx, dy float64
}

func (d *chipmunkDrawer) line(a, b cp.Vector, c color.Color) {
	vector.StrokeLine(d.screen,
		float32(a.X+d.dx), float32(a.Y+d.dy),
		float32(b.X+d.dx), float32(b.Y+d.dy),
		1, c, false)
}

func (d *chipmunkDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	vector.StrokeCircle(d.screen, float32(pos.X+d.dx), float32(pos.Y+d.dy), float32(radius), 1, c, false)
	d.line(pos, pos.Add(cp.ForAngle(angle).Mult(radius)), c)
}

func (d *chipmunkDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *chipmunkDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *chipmunkDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *chipmunkDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	vector.FillCircle(d.screen, float32(pos.X+d.dx), float32(pos.Y+d.dy), float32(size/2), fcolorToRGBA(fill), false)
}

func (d *chipmunkDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *chipmunkDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

// ShapeColor picks sensors out in yellow and static shapes in blue.
func (d *chipmunkDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if shape.Sensor() {
		return cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *chipmunkDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *chipmunkDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *chipmunkDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		return uint8(max(0, min(1, v)) * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
