package gdraw

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"

	"jigsaw/src/base"
	"jigsaw/src/session"
	"jigsaw/ui/gui/gbase"
	"jigsaw/ui/gui/gbase/gconf"
	"jigsaw/ui/gui/gctx"
	"jigsaw/ui/gui/ghelper"
	"jigsaw/ui/gui/ghelper/gdialog"
)

type GUIMenuDrawer struct {
	buttons []*ghelper.Button

	idxStart    int
	idxImage    int
	idxMode     int
	idxGrid     int
	idxSettings int
	idxExit     int

	mode    base.Mode
	gridIdx int

	msg ghelper.MessageBox

	prevMouseDown bool
	prevTime      time.Time
}

func NewGUIMenuDrawer(ctx *gctx.GUIGameContext) *GUIMenuDrawer {
	md := &GUIMenuDrawer{prevTime: time.Now()}
	md.gridIdx = gridIndexOf(ctx.Config.GridRows, ctx.Config.GridCols)
	md.makeLayout(ctx)
	return md
}

func gridIndexOf(rows, cols int) int {
	for i, o := range gconf.GridOptions {
		if o[0] == rows && o[1] == cols {
			return i
		}
	}
	return 1 // 3x3
}

func (md *GUIMenuDrawer) selectedGrid() base.Grid {
	o := gconf.GridOptions[md.gridIdx]
	return base.Grid{Rows: o[0], Cols: o[1]}
}

func (md *GUIMenuDrawer) makeLayout(ctx *gctx.GUIGameContext) {
	md.buttons = []*ghelper.Button{}

	addBtn := func(label string, x, y, w, h int) int {
		img := ghelper.RenderRoundedRect(w, h, 12, ctx.Theme.ButtonFill, ctx.Theme.ButtonStroke, 3)
		b := &ghelper.Button{
			Label: label,
			X:     x, Y: y, W: w, H: h,
			Image: img,
			Scale: 1.0, TargetScale: 1.0, AnimSpeed: 10.0,
		}
		idx := len(md.buttons)
		md.buttons = append(md.buttons, b)
		return idx
	}

	w, h := 320, 52
	x := (ctx.Config.WindowW - w) / 2
	y := 240
	step := h + 16

	md.idxStart = addBtn("Start Game", x, y, w, h)
	y += step
	md.idxImage = addBtn("Choose Image...", x, y, w, h)
	y += step
	md.idxMode = addBtn(md.modeLabel(), x, y, w, h)
	y += step
	md.idxGrid = addBtn(md.gridLabel(), x, y, w, h)
	y += step
	md.idxSettings = addBtn("Settings", x, y, w, h)
	y += step
	md.idxExit = addBtn("Exit", x, y, w, h)
}

func (md *GUIMenuDrawer) modeLabel() string {
	return fmt.Sprintf("Mode: %s", md.mode)
}

func (md *GUIMenuDrawer) gridLabel() string {
	g := md.selectedGrid()
	return fmt.Sprintf("Grid: %dx%d", g.Rows, g.Cols)
}

func (md *GUIMenuDrawer) Update(ctx *gctx.GUIGameContext) (SceneType, error) {
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !md.prevMouseDown
	justReleased := !mouseDown && md.prevMouseDown
	md.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(md.prevTime).Seconds()
	md.prevTime = now

	if md.msg.Open {
		if justClicked {
			bounds := text.BoundString(ctx.AssetsWorker.Fonts().Normal, md.msg.Text)
			md.msg.CollapseMessageInRect(ctx.Config.WindowW, ctx.Config.WindowH, bounds.Dx(), bounds.Dy())
		}
		md.msg.AnimateMessage()
		return SceneNotChanged, nil
	}

	for i, b := range md.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case md.idxStart:
			return md.startGame(ctx)
		case md.idxImage:
			md.pickImage(ctx)
		case md.idxMode:
			md.mode = base.Mode((int(md.mode) + 1) % 3)
			b.Label = md.modeLabel()
		case md.idxGrid:
			md.gridIdx = (md.gridIdx + 1) % len(gconf.GridOptions)
			b.Label = md.gridLabel()
			g := md.selectedGrid()
			ctx.Config.GridRows = g.Rows
			ctx.Config.GridCols = g.Cols
			if err := ctx.Config.Save(); err != nil {
				ctx.Logx.Warnf("save config: %v", err)
			}
		case md.idxSettings:
			return SceneSettings, nil
		case md.idxExit:
			return SceneNotChanged, gbase.ErrExit
		}
	}

	return SceneNotChanged, nil
}

func (md *GUIMenuDrawer) pickImage(ctx *gctx.GUIGameContext) {
	path, err := gdialog.OpenImageFile("Choose a puzzle image")
	if err != nil {
		if !gdialog.Cancelled(err) {
			ctx.Logx.Errorf("image dialog: %v", err)
			md.msg.ShowMessage("Could not open the file dialog.", nil)
		}
		return
	}
	ctx.Config.LastImage = path
	if err := ctx.Config.Save(); err != nil {
		ctx.Logx.Warnf("save config: %v", err)
	}
	ctx.Logx.Infof("image selected: %s", path)
}

func (md *GUIMenuDrawer) startGame(ctx *gctx.GUIGameContext) (SceneType, error) {
	if ctx.Config.LastImage == "" {
		md.msg.ShowMessage("Choose an image first.", nil)
		return SceneNotChanged, nil
	}

	ctx.Game.SetSnapThreshold(float64(ctx.Config.SnapThreshold))
	ctx.Game.SetLimits(session.Limits{
		SecondsPerPiece: float64(ctx.Config.SecondsPerPiece),
		MovesPerPiece:   ctx.Config.MovesPerPiece,
	})
	err := ctx.Game.Setup(
		ctx.Config.LastImage,
		md.selectedGrid(),
		md.mode,
		ctx.Config.WindowW,
		ctx.Config.WindowH,
	)
	if err != nil {
		md.msg.ShowMessage("Could not load the image: "+filepath.Base(ctx.Config.LastImage), nil)
		return SceneNotChanged, nil
	}
	return ScenePlay, nil
}

func (md *GUIMenuDrawer) Draw(ctx *gctx.GUIGameContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)

	title := "Jigsaw Puzzle"
	tb := text.BoundString(ctx.AssetsWorker.Fonts().Title, title)
	text.Draw(screen, title, ctx.AssetsWorker.Fonts().Title,
		(ctx.Config.WindowW-tb.Dx())/2, 150, ctx.Theme.MenuText)

	if ctx.Config.LastImage != "" {
		sub := "Image: " + filepath.Base(ctx.Config.LastImage)
		sb := text.BoundString(ctx.AssetsWorker.Fonts().Small, sub)
		text.Draw(screen, sub, ctx.AssetsWorker.Fonts().Small,
			(ctx.Config.WindowW-sb.Dx())/2, 185, ctx.Theme.MenuText)
	}

	for _, b := range md.buttons {
		b.DrawAnimated(screen, ctx.AssetsWorker.Fonts().Normal, ctx.Theme)
	}

	if md.msg.Open {
		DrawModal(ctx, md.msg.Scale, md.msg.Text, screen)
	}
}
