//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package terminal

// resetTerminalMode is a no-op without termios
func resetTerminalMode() {}
