package buffer

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies errors returned by this package.
type Kind int

// Possible values of Kind.
const (
	// The file does not exist.
	NotFound Kind = iota + 1
	// The file could not be stat'ed for another reason.
	StatError
	// The file lacks the permission needed for the operation.
	PermissionDenied
	// The file could not be opened.
	OpenError
	// Writing to an opened file failed.
	WriteError
	// No filename was given and none is associated with the buffer.
	NoFilename
	// A line number outside the buffer was requested.
	InvalidAddress
)

var kindMessages = map[Kind]string{
	NotFound:         "cannot open input file",
	StatError:        "cannot stat file",
	PermissionDenied: "permission denied",
	OpenError:        "cannot open file",
	WriteError:       "cannot write file",
	NoFilename:       "no current filename",
	InvalidAddress:   "invalid address",
}

// String returns the user-facing message for the kind.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("!(BAD KIND %d)", int(k))
}

// Error is the error type returned by this package.
type Error struct {
	Kind Kind
	// Path of the file involved, if any.
	Path string
	// The underlying error, if any. For file errors this is usually a
	// *fs.PathError.
	Err error
}

// Sentinel errors for use with errors.Is. An *Error matches a sentinel when
// their kinds are the same.
var (
	ErrNotFound         = &Error{Kind: NotFound}
	ErrPermissionDenied = &Error{Kind: PermissionDenied}
	ErrOpen             = &Error{Kind: OpenError}
	ErrWrite            = &Error{Kind: WriteError}
	ErrNoFilename       = &Error{Kind: NoFilename}
	ErrInvalidAddress   = &Error{Kind: InvalidAddress}
)

// Error returns the user-facing message, which only depends on the kind.
func (e *Error) Error() string { return e.Kind.String() }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Diagnostic returns a detailed message in the form "path: cause", suitable
// for the diagnostic channel.
func (e *Error) Diagnostic() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	switch {
	case e.Path == "" && cause == nil:
		return e.Kind.String()
	case e.Path == "":
		return cause.Error()
	case cause == nil:
		return e.Path + ": " + e.Kind.String()
	default:
		return e.Path + ": " + cause.Error()
	}
}

func fileError(kind Kind, path string, err error) error {
	return &Error{Kind: kind, Path: path, Err: err}
}
