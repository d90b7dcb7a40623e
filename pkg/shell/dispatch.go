package shell

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"src.edpp.dev/pkg/edit"
	"src.edpp.dev/pkg/syscmd"
)

// Maps input lines to operations on a Session.
type dispatcher struct {
	s   *edit.Session
	fds [3]*os.File
	out io.Writer
}

func newDispatcher(s *edit.Session, fds [3]*os.File) *dispatcher {
	return &dispatcher{s, fds, fds[1]}
}

// Handles one input line and reports whether the session should end. Errors
// become pending in the Session and are not returned.
func (d *dispatcher) dispatch(line string) (quit bool) {
	s := d.s
	if s.Mode == edit.InsertMode {
		if line == "." {
			s.Mode = edit.CommandMode
		} else {
			s.InsertLine(line)
		}
		return false
	}

	switch line {
	case "a":
		s.Mode, s.Approach = edit.InsertMode, edit.Append
	case "i":
		s.Mode, s.Approach = edit.InsertMode, edit.Prepend
	case "p":
		s.DisplayCurrentLine(false)
	case "n":
		s.DisplayCurrentLine(true)
	case ",p":
		s.DisplayAllLines(false)
	case ",n":
		s.DisplayAllLines(true)
	case "$":
		d.gotoAndShow(s.TotalLines())
	case "=":
		fmt.Fprintln(d.out, s.TotalLines())
	case ".=":
		fmt.Fprintln(d.out, s.LineNum())
	case "h":
		s.DisplayErrorOnce()
	case "H":
		s.ToggleVerbose()
	case "q":
		return s.CheckQuit()
	case "Q":
		return true
	default:
		d.dispatchWithArg(line)
	}
	return false
}

// Handles commands that take an argument, addresses and shell escapes.
func (d *dispatcher) dispatchWithArg(line string) {
	s := d.s
	if cmd, ok := strings.CutPrefix(line, "!"); ok {
		d.shell(cmd)
		return
	}
	if n, ok := parseAddress(line); ok {
		d.gotoAndShow(n)
		return
	}
	if delta, ok := parseOffset(line); ok {
		if s.Move(delta) == nil {
			s.DisplayCurrentLine(false)
		}
		return
	}

	name, arg, ok := splitCommand(line)
	if !ok {
		s.UnknownCommand()
		return
	}
	switch name {
	case "w":
		d.printSize(s.Write(arg))
	case "e":
		if arg == "" {
			arg = s.Filename()
		}
		if s.CheckQuit() {
			d.printSize(s.Replace(arg))
		}
	case "r":
		if cmd, ok := strings.CutPrefix(arg, "!"); ok {
			d.printSize(s.ReadCommand(cmd))
		} else {
			d.printSize(s.Replace(arg))
		}
	case "f":
		if arg != "" {
			s.SetFilename(arg)
		}
		s.DisplayFilename()
	default:
		s.UnknownCommand()
	}
}

func (d *dispatcher) gotoAndShow(n int) {
	if d.s.Goto(n) == nil {
		d.s.DisplayCurrentLine(false)
	}
}

func (d *dispatcher) printSize(size int64, err error) {
	if err == nil {
		fmt.Fprintln(d.out, size)
	}
}

func (d *dispatcher) shell(cmd string) {
	err := syscmd.Run(cmd, d.fds[0], d.fds[1], d.fds[2])
	if err != nil {
		logger.Printf("command %q: %v", cmd, err)
	}
	fmt.Fprintln(d.out, "!")
}

// Parses an absolute line number, which consists of decimal digits only.
func parseAddress(line string) (int, bool) {
	if line == "" || strings.TrimLeft(line, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Parses a relative address: "+" or "-", optionally followed by a count.
func parseOffset(line string) (int, bool) {
	if line == "" || (line[0] != '+' && line[0] != '-') {
		return 0, false
	}
	sign := 1
	if line[0] == '-' {
		sign = -1
	}
	if line == "+" || line == "-" {
		return sign, true
	}
	n, ok := parseAddress(line[1:])
	if !ok {
		return 0, false
	}
	return sign * n, true
}

// Splits a command that takes an optional argument, like "w" or "w file".
// The command name must be a single letter, followed by nothing or by
// whitespace and the argument.
func splitCommand(line string) (name, arg string, ok bool) {
	if line == "" {
		return "", "", false
	}
	name, rest := line[:1], line[1:]
	if rest == "" {
		return name, "", true
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", "", false
	}
	return name, strings.TrimSpace(rest), true
}
