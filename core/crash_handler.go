// Package core holds process-level crash recovery shared by the commands
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var (
	crashMu     sync.Mutex
	crashScreen tcell.Screen
	crashLogger           = zap.NewNop()
	crashOut    io.Writer = os.Stderr
	crashExit             = os.Exit
)

// SetCrashScreen registers the screen restored before a crash report, nil clears it
func SetCrashScreen(s tcell.Screen) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// SetCrashLogger registers a logger that records the panic before exit
func SetCrashLogger(l *zap.Logger) {
	crashMu.Lock()
	defer crashMu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	crashLogger = l
}

// HandleCrash restores the terminal, prints the panic with its stack and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	screen, logger, out, exit := crashScreen, crashLogger, crashOut, crashExit
	crashScreen = nil
	crashMu.Unlock()

	// Terminal first, otherwise the report lands in the alternate buffer
	if screen != nil {
		screen.Fini()
	}

	stack := debug.Stack()
	logger.Error("crash", zap.Any("panic", r), zap.ByteString("stack", stack))
	_ = logger.Sync()

	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", stack)

	exit(1)
}

// Go runs fn on a new goroutine with panic recovery
// Use instead of the go keyword so a crash never leaves the terminal raw
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
