package puzzle

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigsaw/src/base"
)

func pieceImages(n, w, h int) []*image.RGBA {
	imgs := make([]*image.RGBA, n)
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	return imgs
}

func TestNewRegistry_RowMajor(t *testing.T) {
	g := base.Grid{Rows: 2, Cols: 3}
	r, err := NewRegistry(pieceImages(6, 40, 30), g)
	require.NoError(t, err)
	require.Equal(t, 6, r.Len())

	wantCells := []base.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
	}
	for i, p := range r.Pieces() {
		assert.Equal(t, i, p.ID)
		assert.Equal(t, wantCells[i], p.HomeCell)
		assert.Nil(t, p.Pos, "pieces start unpositioned")
	}
}

func TestNewRegistry_CountMismatch(t *testing.T) {
	_, err := NewRegistry(pieceImages(5, 10, 10), base.Grid{Rows: 2, Cols: 3})
	assert.Error(t, err)
}

func TestPiece_DistanceToTarget(t *testing.T) {
	p := &Piece{Target: base.Point{X: 110, Y: 110}}
	assert.True(t, math.IsInf(p.DistanceToTarget(), 1), "unpositioned distance is infinite")

	p.Pos = &base.Point{X: 100, Y: 100}
	assert.InDelta(t, math.Sqrt(200), p.DistanceToTarget(), 1e-9)
}

func TestPiece_Bounds(t *testing.T) {
	p := &Piece{Image: image.NewRGBA(image.Rect(0, 0, 50, 40))}
	_, ok := p.Bounds()
	assert.False(t, ok)

	p.Pos = &base.Point{X: 10, Y: 20}
	r, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, base.Rect{X: 10, Y: 20, W: 50, H: 40}, r)
	assert.True(t, r.Contains(base.Point{X: 10, Y: 20}))
	assert.False(t, r.Contains(base.Point{X: 60, Y: 20}), "right edge exclusive")
}

func TestRegistry_ByZDesc(t *testing.T) {
	r, err := NewRegistry(pieceImages(3, 10, 10), base.Grid{Rows: 1, Cols: 3})
	require.NoError(t, err)

	ps := r.Pieces()
	ps[0].Z = 1
	ps[1].Z = 5
	ps[2].Z = 3

	sorted := r.ByZDesc()
	assert.Equal(t, []int{1, 2, 0}, []int{sorted[0].ID, sorted[1].ID, sorted[2].ID})

	asc := r.ByZAsc()
	assert.Equal(t, []int{0, 2, 1}, []int{asc[0].ID, asc[1].ID, asc[2].ID})
}

func TestRegistry_PlacedCountAndMaxZ(t *testing.T) {
	r, err := NewRegistry(pieceImages(4, 10, 10), base.Grid{Rows: 2, Cols: 2})
	require.NoError(t, err)

	ps := r.Pieces()
	ps[0].Placed = true
	ps[2].Placed = true
	ps[3].Z = 7

	assert.Equal(t, 2, r.PlacedCount())
	assert.Equal(t, 7, r.MaxZ())
}

func TestRegistry_ResetAll(t *testing.T) {
	r, err := NewRegistry(pieceImages(2, 10, 10), base.Grid{Rows: 1, Cols: 2})
	require.NoError(t, err)

	for _, p := range r.Pieces() {
		p.Pos = &base.Point{X: 1, Y: 2}
		p.Placed = true
		p.Dragging = true
		p.Z = 9
	}
	r.ResetAll()

	for _, p := range r.Pieces() {
		assert.Nil(t, p.Pos)
		assert.False(t, p.Placed)
		assert.False(t, p.Dragging)
		assert.Zero(t, p.Z)
		assert.NotNil(t, p.Image, "image survives reset")
	}
}
