package ghelper

import (
	"jigsaw/ui/gui/ghelper/gfont"
)

type GUIAssetsWorker struct {
	fonts *gfont.Fonts
}

func NewGUIAssetsWorker() (*GUIAssetsWorker, error) {
	f, err := gfont.LoadFonts()
	if err != nil {
		return nil, err
	}
	return &GUIAssetsWorker{fonts: f}, nil
}

func (aw *GUIAssetsWorker) Fonts() *gfont.Fonts {
	return aw.fonts
}
