package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
)

var (
	resetMu   sync.Mutex
	resetHook func()
)

// SetTerminalReset registers the function that restores the terminal after a crash
// The UI owner registers screen.Fini here; nil clears the hook
func SetTerminalReset(fn func()) {
	resetMu.Lock()
	resetHook = fn
	resetMu.Unlock()
}

// RestoreTerminal runs the registered reset hook once
func RestoreTerminal() {
	resetMu.Lock()
	fn := resetHook
	resetHook = nil
	resetMu.Unlock()
	if fn != nil {
		fn()
	}
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	RestoreTerminal()

	os.Stdout.Sync()
	os.Stderr.Sync()

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
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
