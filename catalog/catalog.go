// Package catalog lists the selectable maps: where each bitmap lives, how many
// colors it renders with by default, and which square of it tiles the world
// beyond the map edges.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lixenwraith/term7/texture"
	"github.com/lixenwraith/term7/vmath"
)

// DefaultAssetDir is where the built-in maps are looked up
const DefaultAssetDir = "assets/maps"

// paddingBoxSize is the side of every built-in padding box
const paddingBoxSize = 8

var (
	// ErrEmpty is returned when a catalog has no maps
	ErrEmpty = errors.New("catalog: no maps")
	// ErrPaddingBox is returned when a padding box does not fit its map
	ErrPaddingBox = errors.New("catalog: padding box outside map")
)

// Map describes one selectable map
type Map struct {
	Name   string
	Path   string
	Colors int       // default target palette size
	Box    vmath.Box // off-map tiling region
}

// Catalog is an ordered map list with a cursor
type Catalog struct {
	maps    []Map
	current int
}

type builtin struct {
	file   string
	colors int
	x, y   float64
}

var builtins = []builtin{
	{"mariocircuit-1.bmp", 15, 0, 1016},
	{"ghostvalley-3.bmp", 12, 0, 0},
	{"bowsercastle-3.bmp", 8, 32, 40},
	{"chocoisland-2.bmp", 10, 384, 192},
	{"mariocircuit-3.bmp", 15, 472, 0},
	{"donutplains-3.bmp", 13, 448, 896},
	{"koopabeach-1.bmp", 9, 0, 0},
	{"vanillalake-2.bmp", 22, 0, 0},
}

// Builtin returns the stock maps resolved against dir
func Builtin(dir string) []Map {
	if dir == "" {
		dir = DefaultAssetDir
	}
	maps := make([]Map, len(builtins))
	for i, b := range builtins {
		maps[i] = Map{
			Name:   b.file[:len(b.file)-len(filepath.Ext(b.file))],
			Path:   filepath.Join(dir, b.file),
			Colors: b.colors,
			Box:    vmath.Box{Min: vmath.Vec2F{X: b.x, Y: b.y}, Size: paddingBoxSize},
		}
	}
	return maps
}

// New creates a catalog positioned on the first map
func New(maps []Map) (*Catalog, error) {
	if len(maps) == 0 {
		return nil, ErrEmpty
	}
	for i := range maps {
		maps[i].Colors = texture.ClampColors(maps[i].Colors)
		if maps[i].Box.Size < 2 {
			return nil, fmt.Errorf("%w: %s box size %.0f", ErrPaddingBox, maps[i].Name, maps[i].Box.Size)
		}
	}
	return &Catalog{maps: maps}, nil
}

// Len returns the number of maps
func (c *Catalog) Len() int {
	return len(c.maps)
}

// Index returns the cursor position
func (c *Catalog) Index() int {
	return c.current
}

// Current returns the selected map
func (c *Catalog) Current() Map {
	return c.maps[c.current]
}

// Select moves the cursor to i, wrapping out-of-range values
func (c *Catalog) Select(i int) Map {
	n := len(c.maps)
	c.current = ((i % n) + n) % n
	return c.Current()
}

// Next advances the cursor with wraparound
func (c *Catalog) Next() Map {
	return c.Select(c.current + 1)
}

// Add appends a map and returns its index
func (c *Catalog) Add(m Map) int {
	m.Colors = texture.ClampColors(m.Colors)
	c.maps = append(c.maps, m)
	return len(c.maps) - 1
}

// Validate checks that m's padding box lies inside a w x h image
func Validate(m Map, w, h int) error {
	if !m.Box.Within(w, h) {
		return fmt.Errorf("%w: %s box at (%.0f,%.0f) size %.0f, map %dx%d",
			ErrPaddingBox, m.Name, m.Box.Min.X, m.Box.Min.Y, m.Box.Size, w, h)
	}
	return nil
}

// Load builds the texture for m and checks its padding box against it
func Load(m Map, colors, mipmaps int) (*texture.Texture, error) {
	tex, err := texture.Load(m.Path, colors, mipmaps)
	if err != nil {
		return nil, err
	}
	w, h := tex.Size()
	if err := Validate(m, w, h); err != nil {
		tex.Release()
		return nil, err
	}
	return tex, nil
}
