package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/term7/constants"
	"github.com/lixenwraith/term7/terminal"
)

// Backend selectors accepted by ByName
const (
	BackendAuto  = "auto"
	BackendMono  = "mono"
	Backend16    = "16"
	Backend256   = "256"
	BackendSixel = "sixel"
)

// Options wires backends to their outputs
type Options struct {
	Target Target     // cell surface for glyph backends
	Tty    io.Writer  // raw output for sixel images
	Table  ColorTable // color lookup for the 256-color backend
}

// Available returns the backends the terminal supports, poorest first
// Monochrome and 16 colors always work; 256 colors needs a 256 color screen;
// sixel needs the build flag and a terminal that negotiated it
func Available(caps terminal.Capabilities, opts Options) []Backend {
	backends := []Backend{
		NewMonochrome(opts.Target),
		NewColor16(opts.Target),
	}
	if caps.Colors >= 256 && opts.Table != nil {
		backends = append(backends, NewColor256(opts.Target, opts.Table))
	}
	if SixelBuild && caps.Sixel && opts.Tty != nil {
		backends = append(backends, NewPixel(opts.Tty))
	}
	return backends
}

// ByName returns the index in backends for selector name
// auto picks the richest, the last one
func ByName(backends []Backend, name string) (int, error) {
	sel := strings.ToLower(strings.TrimSpace(name))
	if sel == "" || sel == BackendAuto {
		return len(backends) - 1, nil
	}

	want := map[string]string{
		BackendMono:  "monochrome",
		Backend16:    "16 colors",
		Backend256:   "256 colors",
		BackendSixel: "sixel",
	}[sel]
	if want == "" {
		return 0, fmt.Errorf("unknown backend %q", name)
	}

	for i, b := range backends {
		if b.Name() == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("backend %q not supported by this terminal", name)
}

// DefaultMipmaps returns the pyramid depth a backend starts with
func DefaultMipmaps(b Backend) int {
	if _, ok := b.(FrameBackend); ok {
		return constants.DefaultMipmapsPixel
	}
	return constants.DefaultMipmapsGlyph
}

// Restore undoes the terminal color changes b made in Init
func Restore(b Backend) error {
	if c, ok := b.(*Color256); ok {
		return c.table.Restore()
	}
	return nil
}
