package terminal

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSixelOverrides(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("WT_SESSION", "")
	t.Setenv("WEZTERM_PANE", "")

	tests := []struct {
		name     string
		override string
		env      string
		want     bool
	}{
		{"auto plain xterm", SixelAuto, "", false},
		{"empty is auto", "", "", false},
		{"forced on", SixelOn, "", true},
		{"forced off beats env", SixelOff, "1", false},
		{"env on", SixelAuto, "1", true},
		{"env off", " AUTO ", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(SixelEnv, tt.env)
			assert.Equal(t, tt.want, DetectSixel(tt.override))
		})
	}
}

func TestDetectSixelFromTerminal(t *testing.T) {
	t.Setenv(SixelEnv, "")
	t.Setenv("WT_SESSION", "")
	t.Setenv("WEZTERM_PANE", "")

	t.Setenv("TERM_PROGRAM", "")
	t.Setenv("TERM", "foot-extra")
	assert.True(t, DetectSixel(SixelAuto))

	t.Setenv("TERM", "xterm+sixel")
	assert.True(t, DetectSixel(SixelAuto))

	t.Setenv("TERM", "xterm")
	t.Setenv("TERM_PROGRAM", "konsole")
	assert.True(t, DetectSixel(SixelAuto))
}

func TestDetectColorMode(t *testing.T) {
	for _, k := range []string{"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		t.Setenv(k, "")
	}
	t.Setenv("TERM", "xterm-256color")

	assert.Equal(t, ColorMode16, DetectColorMode(8))
	assert.Equal(t, ColorMode256, DetectColorMode(256))

	t.Setenv("COLORTERM", "truecolor")
	assert.Equal(t, ColorModeTrueColor, DetectColorMode(256))
	assert.Equal(t, ColorMode16, DetectColorMode(16), "env never upgrades a 16 color screen")
	assert.Equal(t, "truecolor", ColorModeTrueColor.String())
}

func TestSessionSimulation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewSession(sim)
	require.NoError(t, err)

	sim.SetSize(40, 12)
	w, h := s.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)

	t.Setenv(SixelEnv, "0")
	caps := s.Capabilities(SixelAuto)
	assert.Equal(t, 256, caps.Colors)
	assert.False(t, caps.Sixel)

	// Simulation screens have no tty
	n, err := s.Writer().Write([]byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	events := s.Events()
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	var got *tcell.EventKey
	for ev := range events {
		if k, ok := ev.(*tcell.EventKey); ok {
			got = k
			break
		}
	}
	require.NotNil(t, got)
	assert.Equal(t, 'q', got.Rune())

	s.Close()
	s.Close()
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	assert.Contains(t, out, "\x1b]104\x1b\\")
	assert.Contains(t, out, "\x1b[?25h")
	assert.Contains(t, out, "\x1b[?1049l")
}
