package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Session is an initialized screen plus the raw writer behind it
type Session struct {
	Screen tcell.Screen
	tty    io.Writer
	events chan tcell.Event
	quit   chan struct{}
	once   sync.Once
}

// Open creates and initializes a screen on the controlling terminal
func Open() (*Session, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewSession(s)
}

// NewSession initializes s and wraps it
// Screens without a tty (simulation) get a discarding raw writer
func NewSession(s tcell.Screen) (*Session, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	var w io.Writer = io.Discard
	if tty, ok := s.Tty(); ok && tty != nil {
		w = tty
	}

	return &Session{
		Screen: s,
		tty:    w,
		events: make(chan tcell.Event, 256),
		quit:   make(chan struct{}),
	}, nil
}

// Writer returns the raw terminal writer for sequences tcell does not emit
func (s *Session) Writer() io.Writer {
	return s.tty
}

// Size returns the screen size in cells
func (s *Session) Size() (int, int) {
	return s.Screen.Size()
}

// Capabilities probes the screen, see Detect
func (s *Session) Capabilities(sixel string) Capabilities {
	return Detect(s.Screen, sixel)
}

// Events starts the poller once and returns its channel
// The channel closes when the screen is finalized
func (s *Session) Events() <-chan tcell.Event {
	s.once.Do(func() { go s.poll() })
	return s.events
}

func (s *Session) poll() {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\nevent poller crashed: %v\r\n", r)
			os.Exit(1)
		}
	}()
	defer close(s.events)

	for {
		ev := s.Screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Close restores the palette and finalizes the screen
func (s *Session) Close() {
	select {
	case <-s.quit:
		return
	default:
		close(s.quit)
	}
	s.tty.Write(oscPaletteRestore)
	s.Screen.Fini()
}

// EmergencyReset writes the sequences that bring a terminal out of full-screen
// raw mode, for use when the screen cannot be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(oscPaletteRestore)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
