package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"jigsaw/src"
	"jigsaw/src/base"
	"jigsaw/src/layout"
	"jigsaw/src/logx"
	"jigsaw/src/slicer"
	"jigsaw/ui/gui"
	"jigsaw/ui/gui/gbase/gconf"
)

const logfile string = "jigsaw.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	l := GetLogger(file, c)

	conf, err := gconf.NewGUIConfig()
	if err != nil {
		l.Errorf("error load config: %v", err)
		return err
	}

	g, err := gui.NewGUI(src.NewGame(l), conf, l)
	if err != nil {
		return err
	}
	return g.Run()
}

// runSlice exercises the slicing pipeline headlessly: useful to verify
// an image and grid combination without opening a window.
func runSlice(c *cli.Command) error {
	grid := base.Grid{Rows: int(c.Int("rows")), Cols: int(c.Int("cols"))}
	w := int(c.Int("width"))
	h := int(c.Int("height"))

	img, err := slicer.LoadImage(c.String("image"))
	if err != nil {
		return err
	}

	lay := layout.Compute(w, h, layout.DefaultConfig())
	fitted, pieces, err := slicer.FitAndSlice(img, lay.PlayArea, grid)
	if err != nil {
		return err
	}

	pw, ph := lay.PieceSize(grid)
	fmt.Printf("source:  %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	fmt.Printf("fitted:  %dx%d (play area %dx%d)\n",
		fitted.Bounds().Dx(), fitted.Bounds().Dy(), lay.PlayArea.W, lay.PlayArea.H)
	fmt.Printf("pieces:  %d of %dx%d px (grid %dx%d)\n",
		len(pieces), pw, ph, grid.Rows, grid.Cols)
	return nil
}

func RunJigsaw() error {
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	guiff := []cli.Flag{df, lf, cf}

	sliceff := []cli.Flag{
		&cli.StringFlag{
			Name:     "image",
			Usage:    "path to the source image",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "rows",
			Usage: "grid rows",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "cols",
			Usage: "grid cols",
			Value: 3,
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "screen width used for the layout",
			Value: 1400,
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "screen height used for the layout",
			Value: 900,
		},
	}

	return (&cli.Command{
		Name:  "jigsaw",
		Usage: "drag-and-drop jigsaw puzzle",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "start the game window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "slice",
				Usage: "slice an image headlessly and report the piece geometry",
				Flags: sliceff,
				Action: func(ctx context.Context, c *cli.Command) error {
					return runSlice(c)
				},
			},
		},
	}).Run(context.Background(), os.Args)
}
