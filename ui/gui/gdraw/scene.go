package gdraw

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIGameContext) (SceneType, error)
	Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image)
}

type SceneType int

const (
	SceneMenu SceneType = iota
	ScenePlay
	SceneSettings
	SceneNotChanged
)

func (t SceneType) ToScene(s Scene, ctx *gctx.GUIGameContext) Scene {
	switch t {
	case SceneMenu:
		s = NewGUIMenuDrawer(ctx)
	case ScenePlay:
		s = NewGUIPlayDrawer(ctx)
	case SceneSettings:
		s = NewGUISettingsDrawer(ctx)
	case SceneNotChanged:
	default:
	}
	return s
}

// DrawModal renders a centered message box scaled by the open/close
// animation, with a dimmed backdrop and an OK button.
func DrawModal(ctx *gctx.GUIGameContext, scale float64, message string, screen *ebiten.Image) {
	// dim background
	overlay := ebiten.NewImage(ctx.Config.WindowW, ctx.Config.WindowH)
	overlay.Fill(ctx.Theme.ModalBg)
	screen.DrawImage(overlay, nil)

	bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, message)
	textW := bounds.Dx()
	textH := bounds.Dy()

	mw := textW + 64
	mh := textH + 120

	if scale < 0 {
		scale = 0
	}
	if scale > 1 {
		scale = 1
	}
	currW := int(float64(mw) * scale)
	currH := int(float64(mh) * scale)
	if currW < 6 {
		currW = 6
	}
	if currH < 6 {
		currH = 6
	}
	mx := (ctx.Config.WindowW - currW) / 2
	my := (ctx.Config.WindowH - currH) / 2

	modal := ghelper.RenderRoundedRect(currW, currH, 10, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(mx), float64(my))
	screen.DrawImage(modal, op)

	// text and button only when fully open
	if scale < 1 {
		return
	}

	tx := mx + (mw-textW)/2
	ty := my + 40 + textH
	text.Draw(screen, message, ctx.AssetsWorker.Fonts().Normal, tx, ty, ctx.Theme.ButtonText)

	okW, okH := 120, 44
	okX := mx + (mw-okW)/2
	okY := my + mh - 56
	okImg := ghelper.RenderRoundedRect(okW, okH, 10, ctx.Theme.Accent, ctx.Theme.ButtonStroke, 2)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(okX), float64(okY))
	screen.DrawImage(okImg, op)

	okBounds := text.BoundString(ctx.AssetsWorker.Fonts().Bold, "OK")
	text.Draw(screen, "OK", ctx.AssetsWorker.Fonts().Bold,
		okX+(okW-okBounds.Dx())/2, okY+okH/2+okBounds.Dy()/2, ctx.Theme.ButtonText)
}
