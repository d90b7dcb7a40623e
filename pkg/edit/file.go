package edit

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"src.edpp.dev/pkg/buffer"
	"src.edpp.dev/pkg/fsutil"
	"src.edpp.dev/pkg/syscmd"
)

var diagColor = color.New(color.FgRed)

// Open associates the session with a file and reads it into the buffer, as
// done at startup. The filename is kept even if the file cannot be read, so
// that a later write creates it. It returns the number of bytes read.
func (s *Session) Open(path string) (int64, error) {
	s.filename = path
	return s.Replace(path)
}

// Replace discards the buffer and reads the file at path into it. The last
// line read becomes the current line, the buffer is no longer considered
// edited, and path becomes the session's filename. On failure the buffer is
// left untouched. It returns the number of bytes read.
func (s *Session) Replace(path string) (int64, error) {
	if path == "" {
		return 0, s.fail(buffer.ErrNoFilename)
	}
	lines, size, err := buffer.Load(path)
	if err != nil {
		s.diagnose(err)
		return 0, s.fail(err)
	}
	s.buf.Replace(lines)
	s.filename = path
	s.resetQuit()
	logger.Printf("read %s (%d lines, %s)",
		fsutil.TildeAbbr(path), len(lines), humanize.Bytes(uint64(size)))
	return size, nil
}

// Write writes the buffer to path, or to the session's filename if path is
// empty. If the session has no filename yet, path becomes it. On success the
// buffer is no longer considered edited and the quit protocol starts over. It
// returns the size of the written file.
func (s *Session) Write(path string) (int64, error) {
	if path == "" {
		path = s.filename
	}
	size, err := s.buf.WriteFile(path)
	if err != nil {
		if errors.Is(err, buffer.ErrWrite) {
			logger.Printf("%s may have been left truncated", fsutil.TildeAbbr(path))
		}
		s.diagnose(err)
		return 0, s.fail(err)
	}
	if s.filename == "" {
		s.filename = path
	}
	s.resetQuit()
	logger.Printf("wrote %s (%d lines, %s)",
		fsutil.TildeAbbr(path), s.buf.Len(), humanize.Bytes(uint64(size)))
	return size, nil
}

// ReadCommand discards the buffer and fills it with the combined output of
// running cmd through the shell. The filename is unchanged and the buffer
// counts as edited. A non-zero exit status is only logged; failing to start
// the shell is an error, which leaves the buffer untouched. It returns the
// number of bytes read.
func (s *Session) ReadCommand(cmd string) (int64, error) {
	out, err := syscmd.Output(cmd)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			err = &buffer.Error{Kind: buffer.OpenError, Path: "!" + cmd, Err: err}
			s.diagnose(err)
			return 0, s.fail(err)
		}
		logger.Printf("command %q: %v", cmd, err)
	}
	lines, size, _ := buffer.ReadLines(strings.NewReader(out))
	s.buf.Replace(lines)
	s.edited = true
	return size, nil
}

// DisplayFilename prints the filename associated with the session. It fails
// with a "no current filename" error if there is none.
func (s *Session) DisplayFilename() error {
	if s.filename == "" {
		return s.fail(buffer.ErrNoFilename)
	}
	fmt.Fprintln(s.out, s.filename)
	return nil
}

// Reports a failed file operation on the diagnostic channel, in the
// "path: reason" form of perror.
func (s *Session) diagnose(err error) {
	var e *buffer.Error
	if !errors.As(err, &e) || e.Path == "" {
		return
	}
	logger.Printf("%s: %v", e.Kind, e.Diagnostic())
	diagColor.Fprintln(s.diag, e.Diagnostic())
}

// String returns a short description of the session state, used in debug
// logs.
func (s *Session) String() string {
	return fmt.Sprintf("file=%q lines=%d cur=%d mode=%v edited=%v",
		s.filename, s.buf.Len(), s.buf.LineNum(), s.Mode, s.edited)
}
