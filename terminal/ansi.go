package terminal

// Pre-allocated ANSI sequence fragments
var (
	csiRIS            = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0           = []byte("\x1b[0m")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiAutoWrapOn     = []byte("\x1b[?7h")
	oscPaletteRestore = []byte("\x1b]104\x1b\\") // Reset all color registers
)
