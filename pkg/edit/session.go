// Package edit implements the editing session: the buffer, the current mode,
// the dirty flag, the quit protocol and the pending error.
//
// A Session is driven one input line at a time by a dispatch loop, which
// calls the methods of Session and sets the Mode and Approach fields
// directly when it sees the commands that enter or leave insert mode.
package edit

import (
	"io"

	"src.edpp.dev/pkg/buffer"
	"src.edpp.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[edit] ")

// Mode is the editing mode of a Session.
type Mode int

// Possible values of Mode.
const (
	// Input lines are commands.
	CommandMode Mode = iota
	// Input lines are text added to the buffer, until a line with a single
	// ".".
	InsertMode
)

func (m Mode) String() string {
	if m == InsertMode {
		return "insert"
	}
	return "command"
}

// Approach determines where InsertLine puts the next line.
type Approach int

// Possible values of Approach.
const (
	// After the current line.
	Append Approach = iota
	// Before the current line.
	Prepend
)

// Session is an editing session. It is not safe for concurrent use, with the
// exception of the Interrupt method.
type Session struct {
	Mode     Mode
	Approach Approach

	buf      buffer.Buffer
	filename string
	edited   bool
	// Number of CheckQuit calls on an edited buffer since the last write.
	quitCount int
	verbose   bool
	err       errSlot

	out  io.Writer
	diag io.Writer
}

// NewSession creates a Session with an empty buffer. Output meant for the
// user is written to out; diagnostics about failed file operations are
// written to diag.
func NewSession(out, diag io.Writer, verbose bool) *Session {
	return &Session{out: out, diag: diag, verbose: verbose}
}

// Filename returns the filename associated with the session, or "" if
// there is none.
func (s *Session) Filename() string { return s.filename }

// SetFilename associates a filename with the session.
func (s *Session) SetFilename(name string) { s.filename = name }

// Edited reports whether the buffer has been modified since it was last
// loaded or written.
func (s *Session) Edited() bool { return s.edited }

// Verbose reports whether full error messages are shown.
func (s *Session) Verbose() bool { return s.verbose }

// ToggleVerbose switches between showing full error messages and "?".
func (s *Session) ToggleVerbose() { s.verbose = !s.verbose }

// TotalLines returns the number of lines in the buffer.
func (s *Session) TotalLines() int { return s.buf.Len() }

// LineNum returns the 1-based number of the current line, or 0 if the buffer
// is empty.
func (s *Session) LineNum() int { return s.buf.LineNum() }

// Lines returns a copy of the lines in the buffer.
func (s *Session) Lines() []string { return s.buf.Lines() }

// Current returns the current line.
func (s *Session) Current() (string, bool) { return s.buf.Current() }

// Goto makes line n the current line. On failure the cursor does not move and
// an "invalid address" error becomes pending.
func (s *Session) Goto(n int) error {
	return s.fail(s.buf.Goto(n))
}

// Move moves the cursor delta lines forward (or backward if delta is
// negative). On failure the cursor does not move and an "invalid address"
// error becomes pending.
func (s *Session) Move(delta int) error {
	return s.fail(s.buf.Move(delta))
}

// UnknownCommand records that the dispatch loop did not recognize a command.
func (s *Session) UnknownCommand() {
	s.err.set(ErrUnknownCommand.Error())
}

// Records err, if non-nil, as the pending error, and returns it.
func (s *Session) fail(err error) error {
	if err != nil {
		s.err.set(err.Error())
	}
	return err
}
