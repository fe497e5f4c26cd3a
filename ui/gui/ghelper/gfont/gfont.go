package gfont

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Small  font.Face
	Normal font.Face
	Bold   font.Face
	Title  font.Face
}

// LoadFonts builds the UI faces from the embedded Go fonts, so no font
// assets ship next to the binary.
func LoadFonts() (*Fonts, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, err
	}

	fonts := &Fonts{}
	fonts.Small, err = opentype.NewFace(reg, &opentype.FaceOptions{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	fonts.Normal, err = opentype.NewFace(reg, &opentype.FaceOptions{
		Size:    15,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	fonts.Bold, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	fonts.Title, err = opentype.NewFace(bold, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}
