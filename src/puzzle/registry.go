package puzzle

import (
	"fmt"
	"image"
	"sort"

	"jigsaw/src/base"
)

// Registry holds the fixed piece set of one session: exactly one piece
// per grid cell, created together and replaced wholesale on new game.
type Registry struct {
	pieces []*Piece
}

// NewRegistry builds pieces from row-major sliced images, ids 0..n-1.
func NewRegistry(images []*image.RGBA, grid base.Grid) (*Registry, error) {
	if len(images) != grid.Pieces() {
		return nil, fmt.Errorf("piece count %d does not match grid %dx%d",
			len(images), grid.Rows, grid.Cols)
	}

	pieces := make([]*Piece, 0, len(images))
	id := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			pieces = append(pieces, &Piece{
				ID:       id,
				HomeCell: base.Cell{Row: row, Col: col},
				Image:    images[id],
			})
			id++
		}
	}
	return &Registry{pieces: pieces}, nil
}

func (r *Registry) Pieces() []*Piece { return r.pieces }

func (r *Registry) Len() int { return len(r.pieces) }

// ByZDesc returns the pieces ordered topmost-first for hit testing.
// Stable sort: among equal z values the earlier piece keeps priority.
func (r *Registry) ByZDesc() []*Piece {
	sorted := make([]*Piece, len(r.pieces))
	copy(sorted, r.pieces)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z > sorted[j].Z
	})
	return sorted
}

// ByZAsc returns the pieces in draw order, bottom first.
func (r *Registry) ByZAsc() []*Piece {
	sorted := make([]*Piece, len(r.pieces))
	copy(sorted, r.pieces)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z < sorted[j].Z
	})
	return sorted
}

func (r *Registry) PlacedCount() int {
	n := 0
	for _, p := range r.pieces {
		if p.Placed {
			n++
		}
	}
	return n
}

func (r *Registry) MaxZ() int {
	max := 0
	for _, p := range r.pieces {
		if p.Z > max {
			max = p.Z
		}
	}
	return max
}

func (r *Registry) ResetAll() {
	for _, p := range r.pieces {
		p.Reset()
	}
}
