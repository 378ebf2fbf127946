package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/netviz/terminal"
)

// Finalizer restores the display, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer

	// exit and stderr are replaced in tests
	exit             = os.Exit
	stderr io.Writer = os.Stderr
)

// RegisterScreen makes HandleCrash finalize s before printing; nil unregisters
func RegisterScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}
	os.Stdout.Sync()

	fmt.Fprintf(stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
