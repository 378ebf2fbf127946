package terminal

import (
	"io"
	"os"
)

// Sequences written by EmergencyReset, independent of tcell state
var (
	csiRIS  = []byte("\x1bc") // Reset to Initial State
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiFocusOff       = []byte("\x1b[?1004l")
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseDragOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiFocusOff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
		csiRIS,
	} {
		w.Write(seq)
	}

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
