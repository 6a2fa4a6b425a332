package scenes

import (
	"sync"

	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/shared/gamemath"
	"github.com/automoto/bombspot/systems"
	"github.com/automoto/bombspot/systems/factory"
	"github.com/automoto/bombspot/tuning"
	"github.com/automoto/bombspot/ui"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxOptions select what the sandbox loads.
type SandboxOptions struct {
	Level        string // embedded level name or path to a .tmx
	TuningSource string // file the active tuning came from, empty for built-in
	Watcher      *tuning.Watcher
}

// SandboxScene is the single playable scene: a player, a ball carrying a
// bomb spot, and the level's solids.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         SandboxOptions
	canvas       *ebiten.Image
	canvasOp     *ebiten.DrawImageOptions
	pauseUI      *ui.PauseUI
	once         sync.Once
}

func NewSandboxScene(sc SceneChanger, opts SandboxOptions) *SandboxScene {
	return &SandboxScene{
		sceneChanger: sc,
		opts:         opts,
		canvasOp:     &ebiten.DrawImageOptions{},
	}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()

	if systems.IsPaused(s.ecs) {
		s.pauseUI.SetTuning(systems.TuningSummary(s.ecs))
		s.pauseUI.Update()
	}
}

// Draw renders the world at canvas resolution, then scales the canvas by a
// whole factor and centres it so pixels stay square.
func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Black)
	if s.ecs == nil {
		return
	}

	s.canvas.Fill(cfg.C.Background)
	s.ecs.DrawLayer(cfg.Default, s.canvas)

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	cw, ch := float64(cfg.C.Width), float64(cfg.C.Height)
	scale := gamemath.CanvasScale(sw, sh, cw, ch)

	s.canvasOp.GeoM.Reset()
	s.canvasOp.GeoM.Scale(scale, scale)
	s.canvasOp.GeoM.Translate((sw-cw*scale)/2, (sh-ch*scale)/2)
	screen.DrawImage(s.canvas, s.canvasOp)

	s.ecs.DrawLayer(cfg.HUD, screen)

	if systems.IsPaused(s.ecs) {
		s.pauseUI.Draw(screen)
	}
}

func (s *SandboxScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	s.canvas = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	ecs := ecs.NewECS(donburi.NewWorld())

	// Tick order matters: input, then movement, then the physics step and
	// the sensor events it produced, then anything that reads the result.
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateSettings)

	// Game systems freeze while paused
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBall))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSensors))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMarkers))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	systems.SubscribeSensorRouting(ecs.World)
	s.ecs = ecs

	pauseUI, err := ui.NewPauseUI(
		func() { systems.SetPaused(s.ecs, false) },
		func() { systems.ToggleDebug(s.ecs) },
		func() { systems.ToggleFullscreen(s.ecs) },
	)
	if err != nil {
		panic("failed to build pause panel: " + err.Error())
	}
	s.pauseUI = pauseUI

	level, err := factory.CreateLevel(s.ecs, s.opts.Level)
	if err != nil {
		panic(err)
	}
	levelData := components.Level.Get(level).CurrentLevel

	factory.CreateSpace(s.ecs, levelData.MapWidth, levelData.MapHeight, cfg.Physics.CellSize, cfg.Physics.Gravity)
	factory.CreateCamera(s.ecs)
	factory.CreateTuning(s.ecs, s.opts.TuningSource, s.opts.Watcher)

	for _, solid := range levelData.Solids {
		factory.CreateWall(s.ecs, solid)
	}
	for _, spawn := range levelData.BallSpawns {
		factory.CreateBall(s.ecs, spawn)
	}
	factory.CreatePlayer(s.ecs, levelData.PlayerSpawn)

	log.Info("level loaded",
		"level", levelData.Name,
		"solids", len(levelData.Solids),
		"balls", len(levelData.BallSpawns),
	)
}
