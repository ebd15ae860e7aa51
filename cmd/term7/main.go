package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/lixenwraith/term7/audio"
	"github.com/lixenwraith/term7/catalog"
	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/engine"
	"github.com/lixenwraith/term7/render"
	"github.com/lixenwraith/term7/terminal"
	"github.com/lixenwraith/term7/vmath"
)

// defaultCustomColors is the palette size for --custom maps without --colors
const defaultCustomColors = 16

func main() {
	// Panic Recovery: Ensure terminal is reset even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			fmt.Fprintf(os.Stderr, "\n\x1b[31mTERM7 CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	app := &cli.App{
		Name:    "term7",
		Usage:   "drive over a bitmap map rendered in perspective in the terminal",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "assets",
				EnvVars: []string{"TERM7_ASSETS"},
				Value:   catalog.DefaultAssetDir,
				Usage:   "directory holding the built-in maps",
			},
			&cli.IntFlag{
				Name:  "map",
				Usage: "index of the starting map",
			},
			&cli.IntFlag{
				Name:  "colors",
				Usage: "target palette size, 2..256 (default: the map's own)",
			},
			&cli.IntFlag{
				Name:  "mipmaps",
				Usage: "mipmap levels, 1..8 (default: 5, or 1 for sixel)",
			},
			&cli.StringFlag{
				Name:    "backend",
				EnvVars: []string{"TERM7_BACKEND"},
				Value:   render.BackendAuto,
				Usage:   "auto, mono, 16, 256 or sixel",
			},
			&cli.StringFlag{
				Name:  "palette",
				Value: render.TableOSC,
				Usage: "256 color mapping: osc (reprogram registers), nearest or rgb",
			},
			&cli.StringFlag{
				Name:  "sixel",
				Value: terminal.SixelAuto,
				Usage: "sixel support: auto, on or off (" + terminal.SixelEnv + "=1 forces on)",
			},
			&cli.BoolFlag{
				Name:  "no-perspective",
				Usage: "start with the flat top-down view",
			},
			&cli.BoolFlag{
				Name:  "no-sound",
				Usage: "do not open the audio device",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "write a log to " + filepath.Join(logDir, logFileName),
			},
			&cli.StringFlag{
				Name:  "custom",
				Usage: "extra 8-bit BMP map to start on",
			},
			&cli.Float64Flag{
				Name:  "box-x",
				Usage: "padding box left edge for --custom",
			},
			&cli.Float64Flag{
				Name:  "box-y",
				Usage: "padding box top edge for --custom",
			},
			&cli.Float64Flag{
				Name:  "box-size",
				Value: 8,
				Usage: "padding box side for --custom",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are the flags that shape the catalog and the first texture
type options struct {
	assets   string
	mapIndex int
	colors   int
	mipmaps  int
	backend  string

	custom  string
	boxX    float64
	boxY    float64
	boxSize float64
}

func optionsFrom(c *cli.Context) options {
	return options{
		assets:   c.String("assets"),
		mapIndex: c.Int("map"),
		colors:   c.Int("colors"),
		mipmaps:  c.Int("mipmaps"),
		backend:  c.String("backend"),
		custom:   c.String("custom"),
		boxX:     c.Float64("box-x"),
		boxY:     c.Float64("box-y"),
		boxSize:  c.Float64("box-size"),
	}
}

// buildCatalog lists the built-in maps plus --custom, positioned on the
// starting map
func buildCatalog(o options) (*catalog.Catalog, error) {
	cat, err := catalog.New(catalog.Builtin(o.assets))
	if err != nil {
		return nil, err
	}

	if o.custom == "" {
		cat.Select(o.mapIndex)
		return cat, nil
	}

	colors := o.colors
	if colors == 0 {
		colors = defaultCustomColors
	}
	if o.boxSize < 2 {
		return nil, fmt.Errorf("%w: --box-size %.0f", catalog.ErrPaddingBox, o.boxSize)
	}
	name := filepath.Base(o.custom)
	i := cat.Add(catalog.Map{
		Name:   strings.TrimSuffix(name, filepath.Ext(name)),
		Path:   o.custom,
		Colors: colors,
		Box:    vmath.Box{Min: vmath.Vec2F{X: o.boxX, Y: o.boxY}, Size: o.boxSize},
	})
	cat.Select(i)
	return cat, nil
}

// startParams resolves the palette size and pyramid depth of the first
// texture, before the backend is known
// A zero mipmap count is returned as-is so the engine picks the backend default
func startParams(o options, m catalog.Map) (colors, preload, mipmaps int) {
	colors = m.Colors
	if o.colors != 0 {
		colors = o.colors
	}

	mipmaps = o.mipmaps
	preload = mipmaps
	if preload == 0 {
		preload = constants.DefaultMipmapsGlyph
		if strings.EqualFold(o.backend, render.BackendSixel) {
			preload = constants.DefaultMipmapsPixel
		}
	}
	return colors, preload, mipmaps
}

func run(c *cli.Context) error {
	if logFile := setupLogging(c.Bool("debug")); logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	o := optionsFrom(c)
	cat, err := buildCatalog(o)
	if err != nil {
		return cli.Exit(err, 1)
	}

	// Load before the screen takes over so errors land on a normal terminal
	m := cat.Current()
	colors, preload, mipmaps := startParams(o, m)
	tex, err := catalog.Load(m, colors, preload)
	if err != nil {
		return cli.Exit(fmt.Errorf("cannot read image %s: %w", m.Path, err), 1)
	}

	sess, err := terminal.Open()
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer sess.Close()

	caps := sess.Capabilities(c.String("sixel"))
	logger.Printf("terminal: %d colors, mode %s, sixel %t", caps.Colors, caps.ColorMode, caps.Sixel)

	table, err := render.NewColorTable(c.String("palette"), sess.Writer())
	if err != nil {
		return cli.Exit(err, 1)
	}
	backends := render.Available(caps, render.Options{
		Target: sess.Screen,
		Tty:    sess.Writer(),
		Table:  table,
	})
	backend, err := render.ByName(backends, o.backend)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var sound engine.Sound
	if !c.Bool("no-sound") {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			logger.Printf("continuing without sound: %v", err)
		} else {
			defer sm.Cleanup()
			sm.SetEnabled(true)
			sound = sm
		}
	}

	game, err := engine.New(engine.Config{
		Screen:      sess.Screen,
		Catalog:     cat,
		Texture:     tex,
		Backends:    backends,
		Backend:     backend,
		Colors:      colors,
		Mipmaps:     mipmaps,
		Perspective: !c.Bool("no-perspective"),
		Sound:       sound,
		Clock:       engine.NewTimeProvider(),
		Logger:      logger,
	})
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer game.Close()

	if err := game.Run(sess.Events()); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
