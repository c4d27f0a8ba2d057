package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var restoreHook atomic.Pointer[func()]

// SetRestoreHook registers the terminal cleanup run before a crash report
// Passing nil clears the hook
func SetRestoreHook(fn func()) {
	if fn == nil {
		restoreHook.Store(nil)
		return
	}
	restoreHook.Store(&fn)
}

// exit is replaced in tests
var (
	osExit = os.Exit
	exit   = os.Exit
)

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := restoreHook.Load(); hook != nil {
		(*hook)()
	}

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
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
