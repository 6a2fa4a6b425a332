// bombspot is a small platformer sandbox: walk a little guy around, knock a
// ball about, and get close to it to reveal the bomb spot it carries.
//
// Usage:
//
//	bombspot                 - Play the default level
//	bombspot list            - List embedded levels
//
// Flags:
//
//	--level <name|file.tmx>  - Level to load
//	--tuning <file.yaml>     - Tuning file (default: search config dirs)
//	--watch                  - Reload the tuning file when it changes
//	--debug                  - Start with the debug overlay on
//	--altitude               - Log the ball altitude periodically
//	--log-level <level>      - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/bombspot/assets"
	"github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/fonts"
	"github.com/automoto/bombspot/scenes"
	"github.com/automoto/bombspot/systems"
	"github.com/automoto/bombspot/tuning"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagTuning   string
	flagWatch    bool
	flagDebug    bool
	flagAltitude bool
	flagLogLevel string
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout hands the whole window to the scene, which does its own integer
// scaling of the canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bombspot",
	Short: "Platformer sandbox with a bomb spot you reveal by walking up to it",
	Long: `bombspot opens a window with a small level, a player and a ball.

Controls:
  Left/Right  - Walk
  Up          - Jump
  Space       - Make the ball hop
  A/D         - Spin the ball
  F3          - Debug overlay
  F11         - Fullscreen
  Esc/P       - Pause

Examples:
  bombspot
  bombspot --level ./my-level.tmx
  bombspot --tuning ./tuning.yaml --watch`,
	SilenceUsage: true,
	RunE:         runGame,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := assets.LevelNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagLevel, "level", assets.DefaultLevel, "Embedded level name or path to a .tmx file")
	rootCmd.Flags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the tuning file when it changes")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Start with the debug overlay on")
	rootCmd.Flags().BoolVar(&flagAltitude, "altitude", false, "Log the ball altitude periodically")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	cobra.OnInitialize(setupLogging)
}

func setupLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bombspot",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
}

func runGame(cmd *cobra.Command, args []string) error {
	t, source, err := tuning.Load(flagTuning)
	if err != nil {
		if errors.Is(err, tuning.ErrInvalid) {
			return fmt.Errorf("tuning rejected: %w", err)
		}
		return err
	}
	config.ApplyTuning(t)
	config.Debug.Overlay = flagDebug
	config.Debug.LogAltitude = flagAltitude
	log.Info("tuning loaded", "source", sourceName(source), "tie_break", config.Player.TieBreak)

	var watcher *tuning.Watcher
	if flagWatch {
		if source == "" {
			log.Warn("nothing to watch, tuning is built in")
		} else if watcher, err = tuning.NewWatcher(source); err != nil {
			log.Warn("could not watch tuning file", "path", source, "err", err)
		} else {
			defer watcher.Close()
			log.Info("watching tuning file", "path", watcher.Path())
		}
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Warn("falling back to debug text for the hud", "err", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Warn("settings will not be saved", "err", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Warn("could not load settings", "err", err)
	} else {
		systems.ApplySavedSettings(saved)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := &Game{}
	g.scene = scenes.NewSandboxScene(g, scenes.SandboxOptions{
		Level:        flagLevel,
		TuningSource: source,
		Watcher:      watcher,
	})

	return ebiten.RunGame(g)
}

func sourceName(source string) string {
	if source == "" {
		return "built-in"
	}
	return source
}
