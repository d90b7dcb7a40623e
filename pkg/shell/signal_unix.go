//go:build unix

package shell

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"src.edpp.dev/pkg/edit"
	"src.edpp.dev/pkg/sys"
)

func handleSignal(sig os.Signal, s *edit.Session, stderr io.Writer) {
	switch sig {
	case syscall.SIGINT:
		s.Interrupt()
	case syscall.SIGHUP, syscall.SIGTERM:
		logger.Println("quitting without saving:", s)
		exit(0)
	case syscall.SIGUSR1:
		fmt.Fprint(stderr, sys.DumpStack())
	}
}
