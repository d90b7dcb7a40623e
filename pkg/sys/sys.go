// Package sys provide system utilities with the same API across OSes.
package sys

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
)

const sigsChanBufferSize = 16

// NotifySignals returns a channel on which the signals the editor reacts to
// get delivered, and a function that stops the delivery.
func NotifySignals() (chan os.Signal, func()) { return notifySignals() }

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

const dumpStackBufSizeInit = 8192

// DumpStack returns the stack traces of all goroutines.
func DumpStack() string {
	buf := make([]byte, dumpStackBufSizeInit)
	for {
		n := runtime.Stack(buf, true)
		if n < cap(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, cap(buf)*2)
	}
}
