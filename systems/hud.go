package systems

import (
	"github.com/automoto/bombspot/components"
	cfg "github.com/automoto/bombspot/config"
	"github.com/automoto/bombspot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 6

var controlHints = map[components.InputMethod]string{
	components.InputKeyboard:    "LEFT/RIGHT move  UP jump  SPACE hop ball  A/D spin  F3 debug  ESC pause",
	components.InputXbox:        "STICK move  A jump  B hop ball  LB/RB spin  VIEW debug  MENU pause",
	components.InputPlayStation: "STICK move  CROSS jump  CIRCLE hop ball  L1/R1 spin  SHARE debug  OPTIONS pause",
}

// DrawHUD prints the controls for whichever device was used last.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if IsPaused(ecs) {
		return
	}

	input := getOrCreateInput(ecs)
	hint, ok := controlHints[input.LastInputMethod]
	if !ok {
		hint = controlHints[components.InputKeyboard]
	}

	if !fonts.Loaded(fonts.HUD) {
		ebitenutil.DebugPrintAt(screen, hint, hudMargin, hudMargin)
		return
	}
	face := fonts.HUD.Get()
	text.Draw(screen, hint, face, hudMargin, hudMargin+face.Metrics().Ascent.Ceil(), cfg.White)
}
