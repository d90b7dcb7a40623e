//go:build unix

package buffer

import "golang.org/x/sys/unix"

// Reports whether the calling process may write the file, according to the
// kernel's access check.
func writable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
