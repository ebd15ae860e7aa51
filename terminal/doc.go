// Package terminal owns the tcell screen session: opening and closing it,
// feeding its events to the main loop, reporting what the terminal can show,
// and putting the terminal back into a usable state after a crash.
//
// Raw control sequences that tcell does not model (palette programming,
// sixel images) go through the session's Tty writer.
package terminal
