// Package histutil provides utilities for recording command history.
package histutil

import "src.edpp.dev/pkg/store/storedefs"

// Store is an abstract interface for history store.
type Store interface {
	// AddCmd adds a new command to the history and returns its sequence
	// number.
	AddCmd(text string) (int, error)
	// AllCmds returns all commands in the history, oldest first.
	AllCmds() ([]storedefs.Cmd, error)
}

// Record adds a command line to the history. Empty lines are not recorded;
// for them Record returns -1 and a nil error.
func Record(s Store, text string) (int, error) {
	if text == "" {
		return -1, nil
	}
	return s.AddCmd(text)
}
