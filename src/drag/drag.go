package drag

import (
	"jigsaw/src/base"
	"jigsaw/src/puzzle"
)

// DefaultSnapThreshold is the pixel distance within which a released
// piece snaps onto its target.
const DefaultSnapThreshold = 40.0

// Handler owns the drag lifecycle: at most one piece is dragged at a
// time, by construction. The pointer offset and the z counter are its
// only bookkeeping; both are cleared when the drag ends.
//
// Spurious events (start with nothing under the pointer, update or end
// without an active drag) are well-defined no-ops, never errors.
type Handler struct {
	registry  *puzzle.Registry
	threshold float64

	dragged *puzzle.Piece
	offset  base.Point
	maxZ    int
}

func NewHandler(registry *puzzle.Registry, threshold float64) *Handler {
	if threshold <= 0 {
		threshold = DefaultSnapThreshold
	}
	return &Handler{
		registry:  registry,
		threshold: threshold,
		maxZ:      registry.MaxZ(),
	}
}

func (h *Handler) Dragged() *puzzle.Piece { return h.dragged }

func (h *Handler) SnapThreshold() float64 { return h.threshold }

// PieceAt hit-tests every positioned piece against pt in descending
// z-order and returns the topmost hit, or nil.
func (h *Handler) PieceAt(pt base.Point) *puzzle.Piece {
	for _, p := range h.registry.ByZDesc() {
		if r, ok := p.Bounds(); ok && r.Contains(pt) {
			return p
		}
	}
	return nil
}

// StartDrag picks up the topmost draggable piece under pt. Placed
// pieces are skipped during the descent: they cannot be re-picked and
// they do not shadow unplaced pieces beneath them. The picked piece
// gets a z strictly greater than every previously assigned value
// (bring-to-front).
func (h *Handler) StartDrag(pt base.Point) *puzzle.Piece {
	if h.dragged != nil {
		return nil
	}

	var p *puzzle.Piece
	for _, cand := range h.registry.ByZDesc() {
		if cand.Placed {
			continue
		}
		if r, ok := cand.Bounds(); ok && r.Contains(pt) {
			p = cand
			break
		}
	}
	if p == nil {
		return nil
	}

	h.dragged = p
	p.Dragging = true

	if p.Pos != nil {
		h.offset = base.Point{X: pt.X - p.Pos.X, Y: pt.Y - p.Pos.Y}
	} else {
		h.offset = base.Point{}
	}

	h.maxZ++
	p.Z = h.maxZ
	return p
}

// UpdateDrag moves the dragged piece so the grab point stays under the
// pointer.
func (h *Handler) UpdateDrag(pt base.Point) {
	if h.dragged == nil {
		return
	}
	h.dragged.Pos = &base.Point{X: pt.X - h.offset.X, Y: pt.Y - h.offset.Y}
}

// EndDrag releases the piece, evaluates the snap and reports whether a
// placement occurred.
func (h *Handler) EndDrag() bool {
	if h.dragged == nil {
		return false
	}

	snapped := h.CheckSnap(h.dragged)

	h.dragged.Dragging = false
	h.dragged = nil
	h.offset = base.Point{}
	return snapped
}

// CancelDrag is EndDrag without the snap evaluation: the piece stays
// wherever the last update left it.
func (h *Handler) CancelDrag() {
	if h.dragged == nil {
		return
	}
	h.dragged.Dragging = false
	h.dragged = nil
	h.offset = base.Point{}
}

// CheckSnap places p onto its exact target when released within the
// threshold. Already placed or unpositioned pieces never snap.
func (h *Handler) CheckSnap(p *puzzle.Piece) bool {
	if p == nil || p.Placed || p.Pos == nil {
		return false
	}

	if p.DistanceToTarget() <= h.threshold {
		t := p.Target
		p.Pos = &t
		p.Placed = true
		return true
	}
	return false
}
