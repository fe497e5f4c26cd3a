package session

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigsaw/src/base"
	"jigsaw/src/puzzle"
)

func testSession(t *testing.T, grid base.Grid, mode base.Mode, pieceW, pieceH int) *Session {
	t.Helper()
	imgs := make([]*image.RGBA, grid.Pieces())
	for i := range imgs {
		imgs[i] = image.NewRGBA(image.Rect(0, 0, pieceW, pieceH))
	}
	r, err := puzzle.NewRegistry(imgs, grid)
	require.NoError(t, err)
	return New(grid, r, mode)
}

func TestScatter_AllPiecesInsideStaging(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeFree, 60, 50)
	staging := base.Rect{X: 930, Y: 20, W: 400, H: 430}

	s.Scatter(staging, rand.New(rand.NewSource(1)))

	for _, p := range s.Registry.Pieces() {
		require.NotNil(t, p.Pos)
		w, h := p.Size()
		assert.GreaterOrEqual(t, p.Pos.X, staging.X)
		assert.GreaterOrEqual(t, p.Pos.Y, staging.Y)
		assert.LessOrEqual(t, p.Pos.X+w, staging.Right())
		assert.LessOrEqual(t, p.Pos.Y+h, staging.Bottom())
	}
}

func TestScatter_PieceLargerThanStaging(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 1, Cols: 1}, base.ModeFree, 500, 500)
	staging := base.Rect{X: 10, Y: 10, W: 100, H: 100}

	s.Scatter(staging, rand.New(rand.NewSource(1)))

	p := s.Registry.Pieces()[0]
	require.NotNil(t, p.Pos)
	assert.Equal(t, base.Point{X: 10, Y: 10}, *p.Pos, "degenerate span pins to origin")
}

func TestCompletionPercentage(t *testing.T) {
	empty := testSession(t, base.Grid{Rows: 0, Cols: 0}, base.ModeFree, 1, 1)
	assert.Zero(t, empty.CompletionPercentage(), "no division by zero on empty set")

	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeFree, 10, 10)
	assert.Zero(t, s.CompletionPercentage())

	ps := s.Registry.Pieces()
	ps[0].Placed = true
	ps[1].Placed = true
	assert.InDelta(t, 50.0, s.CompletionPercentage(), 1e-9)

	ps[2].Placed = true
	ps[3].Placed = true
	assert.InDelta(t, 100.0, s.CompletionPercentage(), 1e-9)
}

func TestCheckCompletion(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 1, Cols: 2}, base.ModeFree, 10, 10)
	assert.False(t, s.CheckCompletion())
	assert.False(t, s.Completed)

	for _, p := range s.Registry.Pieces() {
		p.Placed = true
	}
	assert.True(t, s.CheckCompletion())
	assert.True(t, s.Completed)
	assert.False(t, s.Failed)
}

func TestPieceAt_PlacedOnly(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 1, Cols: 2}, base.ModeFree, 10, 10)
	cell := base.Cell{Row: 0, Col: 1}

	assert.Nil(t, s.PieceAt(cell))

	s.Registry.Pieces()[1].Placed = true
	got := s.PieceAt(cell)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)
	assert.Nil(t, s.PieceAt(base.Cell{Row: 0, Col: 0}))
}

func TestEnforceLimits_TimedFailure(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeTimed, 10, 10)
	l := Limits{SecondsPerPiece: 30, MovesPerPiece: 3}

	s.Elapsed = 119.9
	assert.False(t, s.EnforceLimits(l))
	assert.False(t, s.Failed)

	s.Elapsed = 120
	assert.True(t, s.EnforceLimits(l))
	assert.True(t, s.Completed)
	assert.True(t, s.Failed)
}

func TestEnforceLimits_ChallengeFailure(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeChallenge, 10, 10)
	l := Limits{SecondsPerPiece: 30, MovesPerPiece: 3}

	s.MoveCount = 11
	assert.False(t, s.EnforceLimits(l))

	s.MoveCount = 12
	assert.True(t, s.EnforceLimits(l))
	assert.True(t, s.Failed)
}

func TestEnforceLimits_CompletionWinsTie(t *testing.T) {
	// Hitting the move limit on the same move that solves the puzzle is
	// a success, not a failure.
	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeChallenge, 10, 10)
	l := Limits{SecondsPerPiece: 30, MovesPerPiece: 3}

	for _, p := range s.Registry.Pieces() {
		p.Placed = true
	}
	s.MoveCount = s.MoveLimit(l)

	assert.False(t, s.EnforceLimits(l))
	assert.False(t, s.Failed)
}

func TestEnforceLimits_TerminalAndModeless(t *testing.T) {
	l := DefaultLimits()

	free := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeFree, 10, 10)
	free.Elapsed = 1e9
	free.MoveCount = 1000000
	assert.False(t, free.EnforceLimits(l), "free mode has no ceiling")

	done := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeTimed, 10, 10)
	done.Completed = true
	done.Elapsed = 1e9
	assert.False(t, done.EnforceLimits(l), "completed sessions are never re-failed")
}

func TestReset(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 2, Cols: 2}, base.ModeChallenge, 20, 20)
	staging := base.Rect{X: 0, Y: 0, W: 300, H: 300}
	rng := rand.New(rand.NewSource(7))

	s.Scatter(staging, rng)
	s.MoveCount = 5
	s.Elapsed = 42
	s.Completed = true
	s.Failed = true
	s.Registry.Pieces()[0].Placed = true
	s.Registry.Pieces()[0].Z = 3

	s.Reset(staging, rng)

	assert.Zero(t, s.MoveCount)
	assert.Zero(t, s.Elapsed)
	assert.False(t, s.Completed)
	assert.False(t, s.Failed)
	for _, p := range s.Registry.Pieces() {
		require.NotNil(t, p.Pos, "reset re-scatters")
		assert.False(t, p.Placed)
		assert.Zero(t, p.Z)
		assert.NotNil(t, p.Image, "reset never reslices")
	}
}

func TestLimitsMath(t *testing.T) {
	s := testSession(t, base.Grid{Rows: 4, Cols: 5}, base.ModeTimed, 10, 10)
	l := DefaultLimits()
	assert.Equal(t, 600.0, s.TimeLimit(l))
	assert.Equal(t, 60, s.MoveLimit(l))
}
