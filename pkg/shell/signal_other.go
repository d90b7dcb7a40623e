//go:build !unix

package shell

import (
	"io"
	"os"

	"src.edpp.dev/pkg/edit"
)

func handleSignal(sig os.Signal, s *edit.Session, _ io.Writer) {
	if sig == os.Interrupt {
		s.Interrupt()
	}
}
