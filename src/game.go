package src

import (
	"image"
	"math/rand"
	"time"

	"jigsaw/src/base"
	"jigsaw/src/drag"
	"jigsaw/src/layout"
	"jigsaw/src/logx"
	"jigsaw/src/puzzle"
	"jigsaw/src/session"
	"jigsaw/src/slicer"
)

// Game owns the whole piece-placement engine: layout, sliced images,
// registry, drag handler and session state. It is exclusively owned by
// the main loop; the renderer only ever sees Snapshot values.
type Game struct {
	logx logx.Logger

	layoutCfg layout.Config
	limits    session.Limits
	snap      float64
	rng       *rand.Rand

	grid     base.Grid
	lay      layout.Layout
	fitted   *image.RGBA
	preview  *image.RGBA
	registry *puzzle.Registry
	drag     *drag.Handler
	session  *session.Session
}

func NewGame(l logx.Logger) *Game {
	return &Game{
		logx:      l,
		layoutCfg: layout.DefaultConfig(),
		limits:    session.DefaultLimits(),
		snap:      drag.DefaultSnapThreshold,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (g *Game) SetLayoutConfig(cfg layout.Config) { g.layoutCfg = cfg }
func (g *Game) SetLimits(l session.Limits)        { g.limits = l }
func (g *Game) SetSnapThreshold(px float64)       { g.snap = px }

// SetRand replaces the scatter source; tests use a fixed seed.
func (g *Game) SetRand(rng *rand.Rand) { g.rng = rng }

// Setup loads the source image from disk and builds a fresh session.
// Both slicer error kinds abort construction; there is no partial session.
func (g *Game) Setup(path string, grid base.Grid, mode base.Mode, screenW, screenH int) error {
	img, err := slicer.LoadImage(path)
	if err != nil {
		g.logx.Errorf("load image: %v", err)
		return err
	}
	return g.SetupFromImage(img, grid, mode, screenW, screenH)
}

// SetupFromImage slices an already decoded image and builds the session:
// layout first, then pieces, then targets, then scatter.
func (g *Game) SetupFromImage(img image.Image, grid base.Grid, mode base.Mode, screenW, screenH int) error {
	lay := layout.Compute(screenW, screenH, g.layoutCfg)

	fitted, pieceImages, err := slicer.FitAndSlice(img, lay.PlayArea, grid)
	if err != nil {
		g.logx.Errorf("slice image: %v", err)
		return err
	}

	registry, err := puzzle.NewRegistry(pieceImages, grid)
	if err != nil {
		return err
	}
	for _, p := range registry.Pieces() {
		p.Target = lay.CellTarget(grid, p.HomeCell)
	}

	g.grid = grid
	g.lay = lay
	g.fitted = fitted
	g.preview = slicer.Thumbnail(fitted, 180, 180)
	g.registry = registry
	g.drag = drag.NewHandler(registry, g.snap)
	g.session = session.New(grid, registry, mode)
	g.session.Scatter(lay.StagingArea, g.rng)

	g.logx.Infof("session %s started: grid %dx%d, mode %s, %d pieces",
		g.session.ID, grid.Rows, grid.Cols, mode, grid.Pieces())
	return nil
}

func (g *Game) Active() bool { return g.session != nil }

// Resize recomputes the layout and re-assigns every piece's target.
// Pieces are not resliced.
func (g *Game) Resize(screenW, screenH int) {
	if !g.Active() {
		return
	}
	g.lay = layout.Compute(screenW, screenH, g.layoutCfg)
	for _, p := range g.registry.Pieces() {
		p.Target = g.lay.CellTarget(g.grid, p.HomeCell)
	}
}

// ---- pointer events ----

// PointerDown tries to pick up a piece. Ignored once the session is over.
func (g *Game) PointerDown(pt base.Point) {
	if !g.Active() || g.session.Completed {
		return
	}
	g.drag.StartDrag(pt)
}

func (g *Game) PointerMove(pt base.Point) {
	if !g.Active() {
		return
	}
	g.drag.UpdateDrag(pt)
}

// PointerUp ends the drag. On a successful placement the move counter
// advances, completion is re-derived and the mode limits are enforced
// (completion wins a same-move tie against the challenge limit).
func (g *Game) PointerUp(pt base.Point) bool {
	if !g.Active() {
		return false
	}
	g.drag.UpdateDrag(pt)
	if !g.drag.EndDrag() {
		return false
	}

	g.session.MoveCount++
	if g.session.CheckCompletion() {
		g.logx.Infof("session %s completed in %d moves, %.0fs",
			g.session.ID, g.session.MoveCount, g.session.Elapsed)
	} else if g.session.EnforceLimits(g.limits) {
		g.logx.Infof("session %s failed: move limit reached at %.0f%%",
			g.session.ID, g.session.CompletionPercentage())
	}
	return true
}

// Cancel aborts the active drag without a snap check; the piece stays
// where it was last moved to.
func (g *Game) Cancel() {
	if !g.Active() {
		return
	}
	g.drag.CancelDrag()
}

func (g *Game) IsDragging() bool {
	return g.Active() && g.drag.Dragged() != nil
}

// Tick advances the clock by dt seconds while the session is live and
// enforces the timed-mode ceiling. The loop samples dt from a monotonic
// clock; there are no independent timers.
func (g *Game) Tick(dt float64) {
	if !g.Active() || g.session.Completed {
		return
	}
	g.session.Elapsed += dt
	if g.session.EnforceLimits(g.limits) {
		g.logx.Infof("session %s failed: time limit reached at %.0f%%",
			g.session.ID, g.session.CompletionPercentage())
	}
}

// Restart begins a new game on the same image and grid: counters and
// flags reset, pieces re-scattered, no reslice.
func (g *Game) Restart() {
	if !g.Active() {
		return
	}
	g.drag.CancelDrag()
	g.session.Reset(g.lay.StagingArea, g.rng)
	g.logx.Infof("session %s restarted", g.session.ID)
}

// ---- render snapshot ----

// PieceView is the read-only per-piece slice of a frame.
type PieceView struct {
	ID       int
	Pos      base.Point
	HasPos   bool
	W, H     int
	Dragging bool
	Placed   bool
}

type Stats struct {
	Elapsed   float64
	Moves     int
	Percent   float64
	Mode      base.Mode
	Completed bool
	Failed    bool
	TimeLimit float64 // 0 unless timed
	MoveLimit int     // 0 unless challenge
}

// Snapshot is everything the renderer needs for one frame: pieces in
// draw order (ascending z), the layout rectangles and the session stats.
type Snapshot struct {
	Pieces []PieceView
	Layout layout.Layout
	Grid   base.Grid
	Stats  Stats
}

func (g *Game) Snapshot() Snapshot {
	if !g.Active() {
		return Snapshot{}
	}

	ordered := g.registry.ByZAsc()
	views := make([]PieceView, 0, len(ordered))
	for _, p := range ordered {
		v := PieceView{ID: p.ID, Dragging: p.Dragging, Placed: p.Placed}
		v.W, v.H = p.Size()
		if p.Pos != nil {
			v.Pos = *p.Pos
			v.HasPos = true
		}
		views = append(views, v)
	}

	stats := Stats{
		Elapsed:   g.session.Elapsed,
		Moves:     g.session.MoveCount,
		Percent:   g.session.CompletionPercentage(),
		Mode:      g.session.Mode,
		Completed: g.session.Completed,
		Failed:    g.session.Failed,
	}
	switch g.session.Mode {
	case base.ModeTimed:
		stats.TimeLimit = g.session.TimeLimit(g.limits)
	case base.ModeChallenge:
		stats.MoveLimit = g.session.MoveLimit(g.limits)
	default:
	}

	return Snapshot{Pieces: views, Layout: g.lay, Grid: g.grid, Stats: stats}
}

// PieceImages hands the renderer the owned pixel buffers, keyed by
// piece id, for one-time conversion to display handles.
func (g *Game) PieceImages() map[int]*image.RGBA {
	if !g.Active() {
		return nil
	}
	m := make(map[int]*image.RGBA, g.registry.Len())
	for _, p := range g.registry.Pieces() {
		m[p.ID] = p.Image
	}
	return m
}

func (g *Game) PreviewImage() *image.RGBA { return g.preview }

func (g *Game) FittedImage() *image.RGBA { return g.fitted }

func (g *Game) Layout() layout.Layout { return g.lay }

func (g *Game) Grid() base.Grid { return g.grid }

func (g *Game) Session() *session.Session { return g.session }
