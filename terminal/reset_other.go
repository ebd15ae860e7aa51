//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios does not exist
func resetTerminalMode() {}
