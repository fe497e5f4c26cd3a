package slicer

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"

	"jigsaw/src/base"

	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
)

var (
	ErrImageNotFound      = errors.New("image file not found")
	ErrImageFormatInvalid = errors.New("invalid image format")
)

// LoadImage decodes a source image from disk. Supported formats are
// png, jpeg and bmp. Both error kinds are fatal to session construction.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrImageFormatInvalid, path)
	}
	return img, nil
}

// FitAndSlice scales src to exactly tile target with the given grid and
// cuts it into rows*cols pieces in row-major order.
//
// Piece size is floor(target.W/cols) x floor(target.H/rows); the fitted
// image is that size multiplied back by cols/rows, so the tiling is exact
// and any remainder from the floor division is discarded by the crop.
func FitAndSlice(src image.Image, target base.Rect, grid base.Grid) (*image.RGBA, []*image.RGBA, error) {
	if !grid.Valid() {
		return nil, nil, fmt.Errorf("invalid grid %dx%d", grid.Rows, grid.Cols)
	}

	pieceW := target.W / grid.Cols
	pieceH := target.H / grid.Rows
	if pieceW < 1 || pieceH < 1 {
		return nil, nil, fmt.Errorf("target %dx%d too small for grid %dx%d",
			target.W, target.H, grid.Rows, grid.Cols)
	}

	finalW := pieceW * grid.Cols
	finalH := pieceH * grid.Rows
	fitted := coverScale(src, finalW, finalH)

	pieces := make([]*image.RGBA, 0, grid.Pieces())
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			p := image.NewRGBA(image.Rect(0, 0, pieceW, pieceH))
			draw.Draw(p, p.Bounds(), fitted, image.Pt(col*pieceW, row*pieceH), draw.Src)
			pieces = append(pieces, p)
		}
	}
	return fitted, pieces, nil
}

// coverScale scales src uniformly so it fully covers w x h, then
// center-crops the overflow axis.
func coverScale(src image.Image, w, h int) *image.RGBA {
	sb := src.Bounds()
	srcRatio := float64(sb.Dx()) / float64(sb.Dy())
	dstRatio := float64(w) / float64(h)

	var scaledW, scaledH int
	if srcRatio > dstRatio {
		// relatively wider: scale by height, crop left/right
		scaledH = h
		scaledW = int(float64(sb.Dx()) * float64(h) / float64(sb.Dy()))
	} else {
		// relatively taller: scale by width, crop top/bottom
		scaledW = w
		scaledH = int(float64(sb.Dy()) * float64(w) / float64(sb.Dx()))
	}
	if scaledW < w {
		scaledW = w
	}
	if scaledH < h {
		scaledH = h
	}

	scaled := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, sb, xdraw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), scaled, image.Pt((scaledW-w)/2, (scaledH-h)/2), draw.Src)
	return out
}

// Thumbnail shrinks img to fit inside maxW x maxH preserving aspect
// ratio. Images already small enough are returned rescaled 1:1.
func Thumbnail(img image.Image, maxW, maxH int) *image.RGBA {
	sb := img.Bounds()
	w, h := sb.Dx(), sb.Dy()

	scale := 1.0
	if w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if s := float64(maxH) / float64(h); h > maxH && s < scale {
		scale = s
	}

	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, sb, xdraw.Src, nil)
	return out
}
