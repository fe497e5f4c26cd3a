package gimages

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Encode converts an owned pixel buffer into a displayable handle.
// The GPU copy never aliases the core's buffer.
func Encode(img image.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// EncodePieces converts the per-piece buffers handed out by the core,
// keyed by piece id.
func EncodePieces(pieces map[int]*image.RGBA) map[int]*ebiten.Image {
	out := make(map[int]*ebiten.Image, len(pieces))
	for id, img := range pieces {
		out[id] = Encode(img)
	}
	return out
}
