package layout

import "jigsaw/src/base"

// Config carries the proportional split of the screen. The core consumes
// these constants, it does not own them; the GUI config layer feeds them in.
type Config struct {
	PlayRatio       float64 // width share of the play region
	PoolRatio       float64 // width share of the right-hand column
	PoolHeightRatio float64 // staging share of the right column height
	Margin          int     // fixed gap between regions
	PreviewMax      int     // preview square side cap
}

func DefaultConfig() Config {
	return Config{
		PlayRatio:       0.65,
		PoolRatio:       0.30,
		PoolHeightRatio: 0.50,
		Margin:          20,
		PreviewMax:      200,
	}
}

// Layout is the pixel partition of the screen: the play region on the
// left, and staging/preview/info stacked in the right column.
type Layout struct {
	PlayArea    base.Rect
	StagingArea base.Rect
	PreviewArea base.Rect
	InfoArea    base.Rect
}

// Compute partitions a screen of w x h pixels. Pure function; callers
// re-run it on resize and re-assign piece targets themselves.
func Compute(w, h int, cfg Config) Layout {
	m := cfg.Margin

	playW := int(float64(w) * cfg.PlayRatio)
	play := base.Rect{X: m, Y: m, W: playW - m*2, H: h - m*2}

	rightX := playW + m
	rightW := int(float64(w)*cfg.PoolRatio) - m
	availH := h - m*2

	staging := base.Rect{
		X: rightX,
		Y: m,
		W: rightW,
		H: int(float64(availH) * cfg.PoolHeightRatio),
	}

	previewS := rightW
	if previewS > cfg.PreviewMax {
		previewS = cfg.PreviewMax
	}
	preview := base.Rect{
		X: rightX,
		Y: staging.Bottom() + m,
		W: previewS,
		H: previewS,
	}

	info := base.Rect{
		X: rightX,
		Y: preview.Bottom() + m,
		W: rightW,
		H: h - preview.Bottom() - m*2,
	}

	return Layout{
		PlayArea:    play,
		StagingArea: staging,
		PreviewArea: preview,
		InfoArea:    info,
	}
}

// PieceSize is the floor-division cell size; it matches the slicer math
// so grid lines and snap targets stay pixel-consistent with the pieces.
func (l Layout) PieceSize(g base.Grid) (int, int) {
	return l.PlayArea.W / g.Cols, l.PlayArea.H / g.Rows
}

// CellTarget is the top-left pixel of a cell's rectangle in the play area.
func (l Layout) CellTarget(g base.Grid, c base.Cell) base.Point {
	pw, ph := l.PieceSize(g)
	return base.Point{
		X: l.PlayArea.X + c.Col*pw,
		Y: l.PlayArea.Y + c.Row*ph,
	}
}
