package session

import (
	"math/rand"

	"github.com/google/uuid"

	"jigsaw/src/base"
	"jigsaw/src/puzzle"
)

// Limits are the per-piece budgets for the constrained modes. The core
// consumes them; the GUI config layer owns the values.
type Limits struct {
	SecondsPerPiece float64 // timed mode
	MovesPerPiece   int     // challenge mode
}

func DefaultLimits() Limits {
	return Limits{SecondsPerPiece: 30, MovesPerPiece: 3}
}

// Session aggregates one game: the fixed grid and piece set, counters
// and the terminal completed/failed flags. Created together with its
// registry and replaced wholesale on new game.
type Session struct {
	ID       string
	Grid     base.Grid
	Registry *puzzle.Registry
	Mode     base.Mode

	MoveCount int
	Elapsed   float64 // seconds
	Completed bool
	Failed    bool
}

func New(grid base.Grid, registry *puzzle.Registry, mode base.Mode) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Grid:     grid,
		Registry: registry,
		Mode:     mode,
	}
}

// Scatter gives every piece a uniform random position fully inside the
// staging rectangle.
func (s *Session) Scatter(staging base.Rect, rng *rand.Rand) {
	for _, p := range s.Registry.Pieces() {
		w, h := p.Size()

		spanX := staging.W - w
		if spanX < 0 {
			spanX = 0
		}
		spanY := staging.H - h
		if spanY < 0 {
			spanY = 0
		}

		x := staging.X
		if spanX > 0 {
			x += rng.Intn(spanX + 1)
		}
		y := staging.Y
		if spanY > 0 {
			y += rng.Intn(spanY + 1)
		}
		p.Pos = &base.Point{X: x, Y: y}
	}
}

// CheckCompletion derives Completed from the registry. Re-evaluated by
// the caller after every successful placement, not continuously.
func (s *Session) CheckCompletion() bool {
	s.Completed = s.allPlaced()
	return s.Completed
}

func (s *Session) allPlaced() bool {
	for _, p := range s.Registry.Pieces() {
		if !p.Placed {
			return false
		}
	}
	return true
}

// CompletionPercentage is 0..100, linear in placed count, and 0 for an
// empty piece set.
func (s *Session) CompletionPercentage() float64 {
	total := s.Registry.Len()
	if total == 0 {
		return 0
	}
	return float64(s.Registry.PlacedCount()) / float64(total) * 100
}

// PieceAt returns the placed piece whose home cell is cell, or nil.
// Grid-level query only; drag hit-testing works on pixel rectangles.
func (s *Session) PieceAt(cell base.Cell) *puzzle.Piece {
	for _, p := range s.Registry.Pieces() {
		if p.HomeCell == cell && p.Placed {
			return p
		}
	}
	return nil
}

// TimeLimit is the elapsed-time ceiling for timed mode, in seconds.
func (s *Session) TimeLimit(l Limits) float64 {
	return float64(s.Grid.Pieces()) * l.SecondsPerPiece
}

// MoveLimit is the move ceiling for challenge mode.
func (s *Session) MoveLimit(l Limits) int {
	return s.Grid.Pieces() * l.MovesPerPiece
}

// EnforceLimits fails the session when its mode's ceiling is hit before
// the puzzle is solved. A placement that reaches the move limit and
// completes the puzzle on the same move counts as success: completion
// wins over the limit. Failure is terminal.
func (s *Session) EnforceLimits(l Limits) bool {
	if s.Completed {
		return false
	}

	switch s.Mode {
	case base.ModeTimed:
		if s.Elapsed >= s.TimeLimit(l) {
			s.Completed = true
			s.Failed = true
			return true
		}
	case base.ModeChallenge:
		if s.MoveCount >= s.MoveLimit(l) && !s.allPlaced() {
			s.Completed = true
			s.Failed = true
			return true
		}
	default:
	}
	return false
}

// Reset starts a new game on the same sliced pieces: counters zeroed,
// flags cleared, every piece back to initial state and re-scattered.
// The image is never resliced.
func (s *Session) Reset(staging base.Rect, rng *rand.Rand) {
	s.MoveCount = 0
	s.Elapsed = 0
	s.Completed = false
	s.Failed = false
	s.Registry.ResetAll()
	s.Scatter(staging, rng)
}
