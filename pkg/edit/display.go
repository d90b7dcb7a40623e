package edit

import (
	"fmt"

	"src.edpp.dev/pkg/buffer"
)

// DisplayCurrentLine prints the current line, prefixed with its number and a
// tab if showNumber is true. It fails with an "invalid address" error if the
// buffer is empty.
func (s *Session) DisplayCurrentLine(showNumber bool) error {
	line, ok := s.buf.Current()
	if !ok {
		return s.fail(buffer.ErrInvalidAddress)
	}
	if showNumber {
		fmt.Fprintf(s.out, "%d\t%s\n", s.buf.LineNum(), line)
	} else {
		fmt.Fprintln(s.out, line)
	}
	return nil
}

// DisplayAllLines prints every line of the buffer in order. If showNumbers is
// true, each line is prefixed with its number and a tab. The cursor is not
// moved.
func (s *Session) DisplayAllLines(showNumbers bool) {
	s.buf.Each(func(n int, line string) bool {
		if showNumbers {
			fmt.Fprintf(s.out, "%d\t%s\n", n, line)
		} else {
			fmt.Fprintln(s.out, line)
		}
		return true
	})
}

// DisplayError prints the pending error, if any, and clears it. In verbose
// mode the message is printed; otherwise just "?". An interrupt is preceded by
// an empty line, since it usually arrives in the middle of an input line.
func (s *Session) DisplayError() {
	s.err.poll()
	if !s.err.pending {
		return
	}
	prefix := ""
	if s.err.msg == InterruptMessage {
		prefix = "\n"
	}
	if s.verbose {
		fmt.Fprintf(s.out, "%s%s\n", prefix, s.err.msg)
	} else {
		fmt.Fprintf(s.out, "%s?\n", prefix)
	}
	s.err.pending = false
}

// DisplayErrorOnce prints the message of the last error verbatim, whether or
// not it is still pending, without clearing it. It prints nothing if no error
// has occurred yet.
func (s *Session) DisplayErrorOnce() {
	s.err.poll()
	if s.err.msg != "" {
		fmt.Fprintln(s.out, s.err.msg)
	}
}
