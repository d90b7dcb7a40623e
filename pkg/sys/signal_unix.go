//go:build unix

package sys

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

func notifySignals() (chan os.Signal, func()) {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh,
		syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGUSR1)
	return sigCh, func() { signal.Stop(sigCh) }
}

// SignalName returns the conventional name of a signal, such as "SIGINT".
func SignalName(sig os.Signal) string {
	if s, ok := sig.(syscall.Signal); ok {
		if name := unix.SignalName(s); name != "" {
			return name
		}
	}
	return sig.String()
}
