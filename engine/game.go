// Package engine runs the interactive loop: it turns key intents into camera
// motion and render parameter changes, keeps the texture in sync with those
// parameters, and draws one frame plus the status line per iteration.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term7/camera"
	"github.com/lixenwraith/term7/catalog"
	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/input"
	"github.com/lixenwraith/term7/render"
	"github.com/lixenwraith/term7/texture"
)

// Sound is the engine drone as seen by the loop
type Sound interface {
	SetSpeed(fraction float64)
	SetEnabled(on bool)
	Enabled() bool
}

// Screen is the part of tcell.Screen the loop draws through
type Screen interface {
	render.Target
	Size() (int, int)
	Clear()
	Show()
	Sync()
}

// Config holds the startup parameters
type Config struct {
	Screen   Screen
	Catalog  *catalog.Catalog
	Texture  *texture.Texture // built for Catalog.Current() with Colors
	Backends []render.Backend
	Backend  int // index into Backends

	Colors  int
	Mipmaps int // 0 picks the backend default

	Perspective bool
	Sound       Sound // nil disables the sound key
	Clock       Clock
	Logger      *log.Logger
}

// Game is the loop state
type Game struct {
	screen   Screen
	catalog  *catalog.Catalog
	tex      *texture.Texture
	backends []render.Backend
	backend  int

	colors  int
	mipmaps int

	renderer *render.Renderer
	camera   *camera.Camera
	input    *input.Machine
	sound    Sound
	clock    Clock
	log      *log.Logger

	sleep func(time.Duration)
	quit  bool
}

// ErrNoBackend is returned by New when no backend is supplied
var ErrNoBackend = errors.New("engine: no render backend")

// New prepares a game from cfg and initializes the selected backend
// The texture is rebuilt when the effective mipmap count differs from the one
// cfg.Texture was built with
func New(cfg Config) (*Game, error) {
	if len(cfg.Backends) == 0 {
		return nil, ErrNoBackend
	}
	if cfg.Texture == nil || cfg.Catalog == nil || cfg.Screen == nil {
		return nil, errors.New("engine: screen, catalog and texture are required")
	}

	g := &Game{
		screen:   cfg.Screen,
		catalog:  cfg.Catalog,
		tex:      cfg.Texture,
		backends: cfg.Backends,
		backend:  clampIndex(cfg.Backend, len(cfg.Backends)),
		colors:   texture.ClampColors(cfg.Colors),
		renderer: render.NewRenderer(),
		camera:   camera.New(),
		input:    input.NewMachine(),
		sound:    cfg.Sound,
		clock:    cfg.Clock,
		log:      cfg.Logger,
		sleep:    time.Sleep,
	}
	g.renderer.Perspective = cfg.Perspective
	if g.clock == nil {
		g.clock = NewTimeProvider()
	}
	if g.log == nil {
		g.log = log.New(io.Discard, "", 0)
	}

	g.mipmaps = cfg.Mipmaps
	if g.mipmaps == 0 {
		g.mipmaps = render.DefaultMipmaps(g.Backend())
	}
	g.mipmaps = texture.ClampLevels(g.mipmaps)

	if g.mipmaps != g.tex.Count() {
		if err := g.rebuild(); err != nil {
			return nil, err
		}
		return g, nil
	}

	g.initBackend()
	return g, nil
}

// Run polls events and draws frames until quit, a closed event channel, or a
// fatal texture error
func (g *Game) Run(events <-chan tcell.Event) error {
	g.log.Printf("start: map %s, backend %s, colors %d, mipmaps %d",
		g.catalog.Current().Name, g.Backend().Name(), g.colors, g.mipmaps)

	for {
		g.sleep(constants.FrameSleep)

	drain:
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				if err := g.Handle(ev); err != nil {
					return err
				}
			default:
				break drain
			}
		}

		if g.quit {
			return nil
		}
		if err := g.Frame(); err != nil {
			return err
		}
	}
}

// Handle applies one terminal event
func (g *Game) Handle(ev tcell.Event) error {
	intent := g.input.Process(ev, g.clock.Now())
	if intent == nil {
		return nil
	}
	return g.apply(*intent)
}

// Frame releases quiet keys, advances the camera and draws
func (g *Game) Frame() error {
	now := g.clock.Now()
	for _, intent := range g.input.Expire(now) {
		if err := g.apply(intent); err != nil {
			return err
		}
	}

	g.camera.Step(now)
	if g.sound != nil {
		g.sound.SetSpeed(math.Abs(g.camera.Move.Velocity()) / constants.MoveMaxSpeed)
	}

	return g.draw()
}

// Quit reports whether a quit key was pressed
func (g *Game) Quit() bool {
	return g.quit
}

// Backend returns the active backend
func (g *Game) Backend() render.Backend {
	return g.backends[g.backend]
}

// Texture returns the active texture
func (g *Game) Texture() *texture.Texture {
	return g.tex
}

// Camera returns the camera driven by the arrow keys
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Colors returns the target palette size
func (g *Game) Colors() int {
	return g.colors
}

// Mipmaps returns the requested pyramid depth
func (g *Game) Mipmaps() int {
	return g.mipmaps
}

// Perspective reports whether perspective projection is on
func (g *Game) Perspective() bool {
	return g.renderer.Perspective
}

// Status returns the values shown on the status line
func (g *Game) Status() render.Status {
	s := render.Status{
		MoveSpeed: g.camera.Move.Velocity(),
		TurnSpeed: g.camera.Turn.Velocity(),
		Colors:    g.colors,
		Mipmaps:   g.mipmaps,
		Backend:   g.Backend().Name(),
		Map:       g.catalog.Current().Name,
	}
	if g.sound != nil {
		s.Sound = g.sound.Enabled()
	}
	return s
}

// Close undoes terminal color changes and releases the texture
func (g *Game) Close() {
	if err := render.Restore(g.Backend()); err != nil {
		g.log.Printf("restore colors: %v", err)
	}
	if g.tex != nil {
		g.tex.Release()
		g.tex = nil
	}
}

func (g *Game) draw() error {
	sw, sh := g.screen.Size()
	b := g.Backend()
	w, h := render.TargetSize(b, sw, sh)

	g.renderer.Render(g.tex, g.camera.View, g.catalog.Current().Box, w, h, b)

	if sh > 0 {
		render.DrawStatus(g.screen, sh-1, sw, g.Status())
	}
	g.screen.Show()

	if fb, ok := b.(render.FrameBackend); ok {
		if err := fb.Flush(g.tex.Palette()); err != nil {
			return fmt.Errorf("flush %s frame: %w", b.Name(), err)
		}
	}
	return nil
}

// initBackend programs the active backend for the current palette and wipes
// cells left by the previous one
func (g *Game) initBackend() {
	b := g.Backend()
	if err := b.Init(g.tex.Palette()); err != nil {
		g.log.Printf("init %s: %v", b.Name(), err)
	}
	g.screen.Clear()
}

// rebuild loads a fresh texture for the current map and parameters
// The active texture is only released once the new one is complete
func (g *Game) rebuild() error {
	m := g.catalog.Current()
	start := time.Now()

	tex, err := catalog.Load(m, g.colors, g.mipmaps)
	if err != nil {
		return fmt.Errorf("rebuild %s: %w", m.Name, err)
	}

	if g.tex != nil {
		g.tex.Release()
	}
	g.tex = tex
	g.log.Printf("texture %s: colors %d, mipmaps %d, %d levels, %s",
		m.Name, g.colors, g.mipmaps, tex.Count(), time.Since(start))

	g.initBackend()
	return nil
}

func (g *Game) nextBackend() {
	old := g.Backend()
	if err := render.Restore(old); err != nil {
		g.log.Printf("restore %s: %v", old.Name(), err)
	}

	g.backend = (g.backend + 1) % len(g.backends)
	g.log.Printf("backend %s -> %s", old.Name(), g.Backend().Name())
	g.initBackend()
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
