package puzzle

import (
	"image"
	"math"

	"jigsaw/src/base"
)

// Piece is one puzzle piece, bound to its home cell for its whole
// lifetime. Pos is nil until the piece is scattered into the staging
// area; Target is assigned by the layout engine before any scatter.
type Piece struct {
	ID       int
	HomeCell base.Cell
	Image    *image.RGBA

	Pos    *base.Point
	Target base.Point

	Dragging bool
	Placed   bool
	Z        int
}

func (p *Piece) Size() (int, int) {
	if p.Image == nil {
		return 0, 0
	}
	b := p.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Bounds is the current axis-aligned hit rectangle. The second return
// is false while the piece has no position yet.
func (p *Piece) Bounds() (base.Rect, bool) {
	if p.Pos == nil {
		return base.Rect{}, false
	}
	w, h := p.Size()
	return base.Rect{X: p.Pos.X, Y: p.Pos.Y, W: w, H: h}, true
}

// DistanceToTarget is the Euclidean pixel distance to the home cell
// rectangle; +Inf while the piece is unpositioned, so it never snaps.
func (p *Piece) DistanceToTarget() float64 {
	if p.Pos == nil {
		return math.Inf(1)
	}
	dx := float64(p.Pos.X - p.Target.X)
	dy := float64(p.Pos.Y - p.Target.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Reset returns the piece to its pre-scatter state. Image, ID, HomeCell
// and Target are untouched.
func (p *Piece) Reset() {
	p.Pos = nil
	p.Dragging = false
	p.Placed = false
	p.Z = 0
}
