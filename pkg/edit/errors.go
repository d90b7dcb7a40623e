package edit

import (
	"errors"
	"sync/atomic"
)

// Errors that originate from the session itself. Errors about addresses and
// files come from the buffer package.
var (
	ErrFileModified   = errors.New("warning: buffer modified")
	ErrUnknownCommand = errors.New("unknown command")
)

// InterruptMessage is the message of the error that becomes pending when the
// session is interrupted.
const InterruptMessage = "Interupt"

// A single-slot store for the last error. Setting an error while another one
// is pending replaces it.
//
// The interrupted flag is the only part that may be written from another
// goroutine; it is folded into the slot by poll.
type errSlot struct {
	pending bool
	msg     string

	interrupted atomic.Bool
}

func (e *errSlot) set(msg string) {
	e.pending = true
	e.msg = msg
}

func (e *errSlot) poll() {
	if e.interrupted.Swap(false) {
		e.set(InterruptMessage)
	}
}

// Interrupt records an interrupt. It only sets a flag and is safe to call from
// any goroutine, typically the one receiving SIGINT. The interrupt becomes the
// pending error at the next call to DisplayError, DisplayErrorOnce or
// PendingError.
func (s *Session) Interrupt() {
	s.err.interrupted.Store(true)
}

// PendingError returns the message of the pending error and whether there is
// one.
func (s *Session) PendingError() (string, bool) {
	s.err.poll()
	return s.err.msg, s.err.pending
}
