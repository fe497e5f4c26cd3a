package gui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gbase/gconf"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/gdraw"
	"jigsaw/ui/gui/ghelper"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIGameContext
}

func NewGUI(game *src.Game, conf *gconf.Config, l logx.Logger) (*GUIProcessing, error) {
	assets, err := ghelper.NewGUIAssetsWorker()
	if err != nil {
		return nil, err
	}
	ctx := gctx.NewGUIGameContext(game, assets, conf, l)
	return &GUIProcessing{
		current: gdraw.NewGUIMenuDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle("Jigsaw Puzzle")
	if err := ebiten.RunGame(gp); err != nil && err != gbase.ErrExit {
		return err
	}
	return nil
}

func (gp *GUIProcessing) Update() error {
	next, err := gp.current.Update(gp.ctx)
	if err != nil {
		return err
	}
	if next != gdraw.SceneNotChanged {
		gp.current = next.ToScene(gp.current, gp.ctx)
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
