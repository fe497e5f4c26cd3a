package gdraw

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
)

var (
	snapOptions    = []int{20, 30, 40, 60, 80}
	secondsOptions = []int{15, 30, 45, 60}
	movesOptions   = []int{2, 3, 4, 5}
)

type GUISettingsDrawer struct {
	buttons []*ghelper.Button

	idxTheme   int
	idxSnap    int
	idxSeconds int
	idxMoves   int
	idxBack    int

	prevMouseDown bool
	prevTime      time.Time
}

func NewGUISettingsDrawer(ctx *gctx.GUIGameContext) *GUISettingsDrawer {
	sd := &GUISettingsDrawer{prevTime: time.Now()}
	sd.makeLayout(ctx)
	return sd
}

func (sd *GUISettingsDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	sd.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(sd.buttons)
		sd.buttons = append(sd.buttons, b)
		return idx
	}

	w, h := 360, 52
	x := (ctx.Config.WindowW - w) / 2
	y := 240
	step := h + 16

	sd.idxTheme = addBtn("Theme: "+ctx.Config.Theme, x, y, w, h)
	y += step
	sd.idxSnap = addBtn(fmt.Sprintf("Snap distance: %d px", ctx.Config.SnapThreshold), x, y, w, h)
	y += step
	sd.idxSeconds = addBtn(fmt.Sprintf("Timed budget: %d s/piece", ctx.Config.SecondsPerPiece), x, y, w, h)
	y += step
	sd.idxMoves = addBtn(fmt.Sprintf("Challenge budget: %d moves/piece", ctx.Config.MovesPerPiece), x, y, w, h)
	y += step
	sd.idxBack = addBtn("Back", x, y, w, h)
}

func nextOption(options []int, current int) int {
	for i, v := range options {
		if v == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (sd *GUISettingsDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !sd.prevMouseDown
	justReleased := !mouseDown && sd.prevMouseDown
	sd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(sd.prevTime).Seconds()
	sd.prevTime = now

	for i, b := range sd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case sd.idxTheme:
			if ctx.Config.Theme == "light" {
				ctx.Config.Theme = "dark"
			} else {
				ctx.Config.Theme = "light"
			}
			ctx.Theme = gbase.PaletteFromString(ctx.Config.Theme)
			sd.makeLayout(ctx) // re-render widgets with the new palette
		case sd.idxSnap:
			ctx.Config.SnapThreshold = nextOption(snapOptions, ctx.Config.SnapThreshold)
			b.Label = fmt.Sprintf("Snap distance: %d px", ctx.Config.SnapThreshold)
		case sd.idxSeconds:
			ctx.Config.SecondsPerPiece = nextOption(secondsOptions, ctx.Config.SecondsPerPiece)
			b.Label = fmt.Sprintf("Timed budget: %d s/piece", ctx.Config.SecondsPerPiece)
		case sd.idxMoves:
			ctx.Config.MovesPerPiece = nextOption(movesOptions, ctx.Config.MovesPerPiece)
			b.Label = fmt.Sprintf("Challenge budget: %d moves/piece", ctx.Config.MovesPerPiece)
		case sd.idxBack:
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Warnf("save config: %v", err)
			}
			return SceneMenu, nil
		}
	}

	return SceneNotChanged, nil
}

func (sd *GUISettingsDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "Settings"
	tb := text.BoundString(ctx.AssetsWorker.Fonts().Title, title)
	text.Draw(screen, title, ctx.AssetsWorker.Fonts().Title,
		(ctx.Config.WindowW-tb.Dx())/2, 150, ctx.Theme.MenuText)

	for _, b := range sd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}
}
