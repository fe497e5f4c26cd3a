package base

// ---- geometry primitives ----

// Point is a pixel coordinate, top-left origin.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ---- grid addressing ----

// Cell is a (row, col) position inside the puzzle grid.
type Cell struct {
	Row, Col int
}

// Grid is the puzzle dimensions, fixed per session.
type Grid struct {
	Rows, Cols int
}

func (g Grid) Pieces() int { return g.Rows * g.Cols }

func (g Grid) Valid() bool { return g.Rows >= 1 && g.Cols >= 1 }

// ---- game modes ----

type Mode int

const (
	ModeFree Mode = iota
	ModeTimed
	ModeChallenge
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeTimed:
		return "timed"
	case ModeChallenge:
		return "challenge"
	default:
	}
	return ""
}

func ModeFromString(s string) Mode {
	switch s {
	case "timed":
		return ModeTimed
	case "challenge":
		return ModeChallenge
	default:
	}
	return ModeFree
}
