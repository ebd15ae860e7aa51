package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode16        ColorMode = iota // basic ANSI colors only
	ColorMode256                        // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	}
	return "16"
}

// Capabilities is what the terminal declared at startup
type Capabilities struct {
	Colors    int       // number of colors tcell reports
	ColorMode ColorMode // best color encoding available
	Sixel     bool      // sixel graphics negotiated
}

// Sixel detection overrides
const (
	SixelAuto = "auto"
	SixelOn   = "on"
	SixelOff  = "off"
)

// SixelEnv forces sixel negotiation on when set to 1 and off when set to 0
const SixelEnv = "TERM7_SIXEL"

// DetectColorMode determines terminal color capability from environment
// colors is the count reported by the screen; env only upgrades 256 to true color
func DetectColorMode(colors int) ColorMode {
	if colors < 256 {
		return ColorMode16
	}

	// 1. Check COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Check terminal-specific env vars
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	// 3. Check TERM for known true color terminals
	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// DetectSixel decides whether the terminal accepts sixel images
// override is one of SixelAuto, SixelOn, SixelOff; auto consults SixelEnv
// first, then known terminal identifiers
func DetectSixel(override string) bool {
	o := strings.ToLower(strings.TrimSpace(override))
	if o == "" || o == SixelAuto {
		switch os.Getenv(SixelEnv) {
		case "1":
			o = SixelOn
		case "0":
			o = SixelOff
		}
	}

	switch o {
	case SixelOn:
		return true
	case SixelOff:
		return false
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// Foot terminal
	if termProgram == "foot" || strings.HasPrefix(term, "foot") {
		return true
	}
	// Konsole (recent versions)
	if termProgram == "konsole" {
		return true
	}
	// Windows Terminal (since v1.22)
	if os.Getenv("WT_SESSION") != "" {
		return true
	}
	// WezTerm and mlterm speak sixel alongside their own protocols
	if termProgram == "WezTerm" || termProgram == "mlterm" || os.Getenv("WEZTERM_PANE") != "" {
		return true
	}
	// Explicit opt-in through TERM
	return strings.Contains(strings.ToLower(term), "sixel")
}

// Detect probes a started screen
func Detect(s tcell.Screen, sixel string) Capabilities {
	colors := s.Colors()
	return Capabilities{
		Colors:    colors,
		ColorMode: DetectColorMode(colors),
		Sixel:     DetectSixel(sixel),
	}
}
