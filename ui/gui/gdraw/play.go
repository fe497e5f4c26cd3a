package gdraw

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/src"
	"jigsaw/src/base"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
	"jigsaw/ui/gui/ghelper/gimages"
)

const gridLineWidth = 2

type GUIPlayDrawer struct {
	// display handles, converted once per session
	pieceImgs map[int]*ebiten.Image
	preview   *ebiten.Image

	// buttons
	buttons []*ghelper.Button
	idxNew  int
	idxMenu int

	// message box reuse
	msg         ghelper.MessageBox
	resultShown bool

	// input edge tracking
	prevMouseDown bool
	prevKeyN      bool
	prevKeyEsc    bool

	lastTick time.Time
}

func NewGUIPlayDrawer(ctx *gctx.GUIGameContext) *GUIPlayDrawer {
	pd := &GUIPlayDrawer{
		pieceImgs: gimages.EncodePieces(ctx.Game.PieceImages()),
		preview:   gimages.Encode(ctx.Game.PreviewImage()),
		lastTick:  time.Now(),
	}
	pd.makeLayoutButtons(ctx)
	return pd
}

func (pd *GUIPlayDrawer) makeLayoutButtons(ctx *gctx.GUIGameContext) {
	pd.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(pd.buttons)
		pd.buttons = append(pd.buttons, b)
		return idx
	}

	info := ctx.Game.Layout().InfoArea
	w, h := (info.W-12)/2, 44
	y := info.Bottom() - h - 8
	pd.idxNew = addBtn("New Game", info.X, y, w, h)
	pd.idxMenu = addBtn("Menu", info.X+w+12, y, w, h)
}

func (pd *GUIPlayDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	// elapsed time is sampled from the loop tick, no async timers
	ctx.Game.Tick(dt)

	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	keyN := ebiten.IsKeyPressed(ebiten.KeyN)
	justN := keyN && !pd.prevKeyN
	pd.prevKeyN = keyN
	keyEsc := ebiten.IsKeyPressed(ebiten.KeyEscape)
	justEsc := keyEsc && !pd.prevKeyEsc
	pd.prevKeyEsc = keyEsc

	if pd.msg.Open {
		if justPressed {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, pd.msg.Text)
			pd.msg.CollapseMessageInRect(ctx.Config.WindowW, ctx.Config.WindowH, bounds.Dx(), bounds.Dy())
		}
		pd.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	// keyboard: N starts over, ESC cancels the drag first, then leaves
	if justN {
		ctx.Game.Restart()
		pd.resultShown = false
	}
	if justEsc {
		if ctx.Game.IsDragging() {
			ctx.Game.Cancel()
		} else {
			return SceneMenu, nil
		}
	}

	// pointer events straight into the engine; spurious ones are no-ops
	pt := base.Point{X: mx, Y: my}
	if justPressed {
		ctx.Game.PointerDown(pt)
	}
	if mouseDown {
		ctx.Game.PointerMove(pt)
	}
	if justReleased {
		if ctx.Game.PointerUp(pt) {
			snap := ctx.Game.Snapshot()
			ctx.Logx.Infof("piece placed: move %d, completion %.0f%%",
				snap.Stats.Moves, snap.Stats.Percent)
		}
	}

	// buttons
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justPressed, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case pd.idxNew:
			ctx.Game.Restart()
			pd.resultShown = false
		case pd.idxMenu:
			return SceneMenu, nil
		}
	}

	// one modal per result
	snap := ctx.Game.Snapshot()
	if snap.Stats.Completed && !pd.resultShown {
		pd.resultShown = true
		pd.msg.ShowMessage(resultMessage(snap.Stats), nil)
	}

	return SceneNotChanged, nil
}

func resultMessage(s src.Stats) string {
	if !s.Failed {
		return fmt.Sprintf("Solved in %d moves and %s! Press N for a new game.",
			s.Moves, ghelper.FormatClock(s.Elapsed))
	}
	if s.Mode == base.ModeTimed {
		return fmt.Sprintf("Time's up! You reached %.0f%%.", s.Percent)
	}
	return fmt.Sprintf("Move limit reached! You got to %.0f%%.", s.Percent)
}

// Draw
func (pd *GUIPlayDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	snap := ctx.Game.Snapshot()
	lay := snap.Layout

	pd.drawPlayArea(ctx, screen, snap)
	pd.drawStaging(ctx, screen, lay.StagingArea)
	pd.drawPieces(ctx, screen, snap)
	pd.drawPreview(ctx, screen, lay.PreviewArea)
	pd.drawInfo(ctx, screen, snap)

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if pd.msg.Open {
		DrawModal(ctx, pd.msg.Scale, pd.msg.Text, screen)
	}
}

func (pd *GUIPlayDrawer) drawPlayArea(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap src.Snapshot) {
	area := snap.Layout.PlayArea
	ghelper.DrawRect(screen, float64(area.X), float64(area.Y), float64(area.W), float64(area.H), ctx.Theme.PlayBg)

	pw := area.W / snap.Grid.Cols
	ph := area.H / snap.Grid.Rows

	// cell boundaries
	for col := 1; col < snap.Grid.Cols; col++ {
		x := area.X + col*pw
		ghelper.DrawRect(screen, float64(x), float64(area.Y), gridLineWidth, float64(area.H), ctx.Theme.GridLine)
	}
	for row := 1; row < snap.Grid.Rows; row++ {
		y := area.Y + row*ph
		ghelper.DrawRect(screen, float64(area.X), float64(y), float64(area.W), gridLineWidth, ctx.Theme.GridLine)
	}

	ghelper.DrawRectStroke(screen, float64(area.X), float64(area.Y), float64(area.W), float64(area.H), gridLineWidth, ctx.Theme.GridLine)
}

func (pd *GUIPlayDrawer) drawStaging(ctx *gctx.GUIGameContext, screen *ebiten.Image, area base.Rect) {
	bg := ghelper.RenderRoundedRect(area.W, area.H, 8, ctx.Theme.StagingBg, ctx.Theme.ButtonStroke, 2)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(area.X), float64(area.Y))
	screen.DrawImage(bg, op)
}

func (pd *GUIPlayDrawer) drawPieces(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap src.Snapshot) {
	// snapshot order is ascending z, dragged piece is on top by construction
	for _, v := range snap.Pieces {
		if !v.HasPos {
			continue
		}
		img := pd.pieceImgs[v.ID]
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(v.Pos.X), float64(v.Pos.Y))
		screen.DrawImage(img, op)

		if v.Dragging {
			ghelper.DrawRectStroke(screen, float64(v.Pos.X), float64(v.Pos.Y),
				float64(v.W), float64(v.H), 2, ctx.Theme.Accent)
		}
	}
}

func (pd *GUIPlayDrawer) drawPreview(ctx *gctx.GUIGameContext, screen *ebiten.Image, area base.Rect) {
	ghelper.DrawRect(screen, float64(area.X), float64(area.Y), float64(area.W), float64(area.H), ctx.Theme.PlayBg)
	if pd.preview != nil {
		b := pd.preview.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(area.X+(area.W-b.Dx())/2),
			float64(area.Y+(area.H-b.Dy())/2),
		)
		screen.DrawImage(pd.preview, op)
	}
	ghelper.DrawRectStroke(screen, float64(area.X), float64(area.Y), float64(area.W), float64(area.H), 2, ctx.Theme.GridLine)
}

func (pd *GUIPlayDrawer) drawInfo(ctx *gctx.GUIGameContext, screen *ebiten.Image, snap src.Snapshot) {
	area := snap.Layout.InfoArea
	face := ctx.AssetsWorker.Fonts().Normal

	clock := ghelper.FormatClock(snap.Stats.Elapsed)
	if snap.Stats.TimeLimit > 0 {
		clock += " / " + ghelper.FormatClock(snap.Stats.TimeLimit)
	}
	moves := fmt.Sprintf("%d", snap.Stats.Moves)
	if snap.Stats.MoveLimit > 0 {
		moves = fmt.Sprintf("%d / %d", snap.Stats.Moves, snap.Stats.MoveLimit)
	}

	lines := []string{
		fmt.Sprintf("Mode: %s", snap.Stats.Mode),
		fmt.Sprintf("Time: %s", clock),
		fmt.Sprintf("Moves: %s", moves),
		fmt.Sprintf("Done: %.0f%%", snap.Stats.Percent),
	}

	y := area.Y + 20
	for _, line := range lines {
		text.Draw(screen, line, face, area.X+4, y, ctx.Theme.MenuText)
		y += 24
	}

	text.Draw(screen, "N: new game   ESC: menu", ctx.AssetsWorker.Fonts().Small,
		area.X+4, y+4, ctx.Theme.MenuText)
}
