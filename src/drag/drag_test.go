package drag

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigsaw/src/base"
	"jigsaw/src/puzzle"
)

func testRegistry(t *testing.T, n, w, h int) *puzzle.Registry {
	t.Helper()
	imgs := make([]*image.RGBA, n)
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	r, err := puzzle.NewRegistry(imgs, base.Grid{Rows: 1, Cols: n})
	require.NoError(t, err)
	return r
}

func TestCheckSnap_WithinThreshold(t *testing.T) {
	r := testRegistry(t, 1, 60, 60)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 100, Y: 100}
	p.Target = base.Point{X: 110, Y: 110}

	h := NewHandler(r, 30)
	assert.True(t, h.CheckSnap(p))
	assert.True(t, p.Placed)
	assert.Equal(t, base.Point{X: 110, Y: 110}, *p.Pos, "snap lands exactly on target")
}

func TestCheckSnap_BeyondThreshold(t *testing.T) {
	r := testRegistry(t, 1, 60, 60)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 100, Y: 100}
	p.Target = base.Point{X: 200, Y: 200}

	h := NewHandler(r, 30)
	assert.False(t, h.CheckSnap(p))
	assert.False(t, p.Placed)
	assert.Equal(t, base.Point{X: 100, Y: 100}, *p.Pos, "position unchanged on miss")
}

func TestCheckSnap_PlacedAndUnpositionedNoop(t *testing.T) {
	r := testRegistry(t, 2, 60, 60)
	h := NewHandler(r, 30)

	placed := r.Pieces()[0]
	placed.Pos = &base.Point{X: 5, Y: 5}
	placed.Target = base.Point{X: 5, Y: 5}
	placed.Placed = true
	assert.False(t, h.CheckSnap(placed))

	// no position: distance is infinite, never snaps
	free := r.Pieces()[1]
	free.Target = base.Point{X: 0, Y: 0}
	assert.False(t, h.CheckSnap(free))
	assert.False(t, h.CheckSnap(nil))
}

func TestStartDrag_EmptyHitIsNoop(t *testing.T) {
	r := testRegistry(t, 1, 40, 40)
	r.Pieces()[0].Pos = &base.Point{X: 500, Y: 500}

	h := NewHandler(r, 30)
	assert.Nil(t, h.StartDrag(base.Point{X: 10, Y: 10}))
	assert.Nil(t, h.Dragged())
	assert.False(t, r.Pieces()[0].Dragging)

	// update/end with no active drag are no-ops too
	h.UpdateDrag(base.Point{X: 1, Y: 1})
	assert.False(t, h.EndDrag())
	h.CancelDrag()
}

func TestStartDrag_SkipsUnpositionedPieces(t *testing.T) {
	r := testRegistry(t, 1, 40, 40)
	h := NewHandler(r, 30)
	assert.Nil(t, h.StartDrag(base.Point{X: 0, Y: 0}))
}

func TestHitTest_ZOrderTie(t *testing.T) {
	r := testRegistry(t, 2, 50, 50)
	a, b := r.Pieces()[0], r.Pieces()[1]
	a.Pos = &base.Point{X: 100, Y: 100}
	b.Pos = &base.Point{X: 100, Y: 100}
	a.Z = 1
	b.Z = 2

	h := NewHandler(r, 30)
	hit := h.PieceAt(base.Point{X: 120, Y: 120})
	require.NotNil(t, hit)
	assert.Equal(t, b.ID, hit.ID, "highest z wins the overlap")
}

func TestStartDrag_BringToFrontMonotonic(t *testing.T) {
	r := testRegistry(t, 2, 50, 50)
	a, b := r.Pieces()[0], r.Pieces()[1]
	a.Pos = &base.Point{X: 0, Y: 0}
	b.Pos = &base.Point{X: 100, Y: 0}

	h := NewHandler(r, 30)
	seen := 0
	for i := 0; i < 4; i++ {
		p := a
		if i%2 == 1 {
			p = b
		}
		got := h.StartDrag(base.Point{X: p.Pos.X + 10, Y: 5})
		require.NotNil(t, got)
		assert.Greater(t, got.Z, seen, "every pick gets a strictly greater z")
		seen = got.Z
		h.CancelDrag()
	}
}

func TestAtMostOneDragged(t *testing.T) {
	r := testRegistry(t, 2, 50, 50)
	a, b := r.Pieces()[0], r.Pieces()[1]
	a.Pos = &base.Point{X: 0, Y: 0}
	b.Pos = &base.Point{X: 100, Y: 0}

	h := NewHandler(r, 30)
	require.NotNil(t, h.StartDrag(base.Point{X: 10, Y: 10}))
	assert.Nil(t, h.StartDrag(base.Point{X: 110, Y: 10}), "second pick refused mid-drag")

	dragging := 0
	for _, p := range r.Pieces() {
		if p.Dragging {
			dragging++
		}
	}
	assert.Equal(t, 1, dragging)

	h.EndDrag()
	for _, p := range r.Pieces() {
		assert.False(t, p.Dragging)
	}
}

func TestUpdateDrag_KeepsGrabOffset(t *testing.T) {
	r := testRegistry(t, 1, 50, 50)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 100, Y: 100}

	h := NewHandler(r, 30)
	require.NotNil(t, h.StartDrag(base.Point{X: 105, Y: 107}))

	h.UpdateDrag(base.Point{X: 205, Y: 307})
	assert.Equal(t, base.Point{X: 200, Y: 300}, *p.Pos)
}

func TestEndDrag_SnapsWhenClose(t *testing.T) {
	r := testRegistry(t, 1, 50, 50)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 300, Y: 300}
	p.Target = base.Point{X: 100, Y: 100}

	h := NewHandler(r, 40)
	require.NotNil(t, h.StartDrag(base.Point{X: 310, Y: 310}))
	h.UpdateDrag(base.Point{X: 120, Y: 115}) // piece lands at (110,105), distance ~11

	assert.True(t, h.EndDrag())
	assert.True(t, p.Placed)
	assert.Equal(t, base.Point{X: 100, Y: 100}, *p.Pos)
	assert.Nil(t, h.Dragged())
}

func TestCancelDrag_SkipsSnap(t *testing.T) {
	r := testRegistry(t, 1, 50, 50)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 300, Y: 300}
	p.Target = base.Point{X: 100, Y: 100}

	h := NewHandler(r, 40)
	require.NotNil(t, h.StartDrag(base.Point{X: 300, Y: 300}))
	h.UpdateDrag(base.Point{X: 105, Y: 102})

	h.CancelDrag()
	assert.False(t, p.Placed, "cancel never snaps, even in range")
	assert.Equal(t, base.Point{X: 105, Y: 102}, *p.Pos, "piece stays where the drag left it")
	assert.False(t, p.Dragging)
}

func TestStartDrag_PlacedDoesNotShadowLoosePiece(t *testing.T) {
	r := testRegistry(t, 2, 50, 50)
	placed, loose := r.Pieces()[0], r.Pieces()[1]
	placed.Pos = &base.Point{X: 100, Y: 100}
	placed.Placed = true
	placed.Z = 9
	loose.Pos = &base.Point{X: 100, Y: 100}
	loose.Z = 1

	h := NewHandler(r, 40)
	got := h.StartDrag(base.Point{X: 120, Y: 120})
	require.NotNil(t, got)
	assert.Equal(t, loose.ID, got.ID, "placed pieces are skipped when picking")
	assert.False(t, placed.Dragging)
}

func TestPlacedPieceNotRepickable(t *testing.T) {
	r := testRegistry(t, 1, 50, 50)
	p := r.Pieces()[0]
	p.Pos = &base.Point{X: 100, Y: 100}
	p.Target = base.Point{X: 100, Y: 100}
	p.Placed = true

	h := NewHandler(r, 40)
	assert.Nil(t, h.StartDrag(base.Point{X: 110, Y: 110}))
	assert.False(t, p.Dragging)
}
