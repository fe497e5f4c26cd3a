package gctx

import (
	"jigsaw/src"
	"jigsaw/src/logx"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gbase/gconf"
	"jigsaw/ui/gui/ghelper"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Game         *src.Game
	AssetsWorker *ghelper.GUIAssetsWorker
	Config       *gconf.Config
	Theme        gbase.Palette
	Logx         logx.Logger
}

func NewGUIGameContext(g *src.Game, a *ghelper.GUIAssetsWorker, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Game:         g,
		AssetsWorker: a,
		Config:       c,
		Theme:        gbase.PaletteFromString(c.Theme),
		Logx:         l,
	}
}
