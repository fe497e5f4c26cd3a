package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 1400
	WindowH int = 900
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	PlayBg       color.RGBA
	StagingBg    color.RGBA
	GridLine     color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	MenuText     color.RGBA
	Accent       color.RGBA
	ModalBg      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0x2d, 0x34, 0x36, 0xff},
	PlayBg:       color.RGBA{0x63, 0x6e, 0x72, 0xff},
	StagingBg:    color.RGBA{0xb2, 0xbe, 0xc3, 0xff},
	GridLine:     color.RGBA{0xc8, 0xc8, 0xc8, 0xff},
	ButtonFill:   color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x34, 0x98, 0xdb, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x88},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	PlayBg:       color.RGBA{0x26, 0x2b, 0x2d, 0xff},
	StagingBg:    color.RGBA{0x3a, 0x41, 0x44, 0xff},
	GridLine:     color.RGBA{0x60, 0x60, 0x60, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	MenuText:     color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	ModalBg:      color.RGBA{0x00, 0x00, 0x00, 0x99},
}
