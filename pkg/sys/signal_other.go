//go:build !unix

package sys

import (
	"os"
	"os/signal"
)

func notifySignals() (chan os.Signal, func()) {
	sigCh := make(chan os.Signal, sigsChanBufferSize)
	signal.Notify(sigCh, os.Interrupt)
	return sigCh, func() { signal.Stop(sigCh) }
}

// SignalName returns the name of a signal.
func SignalName(sig os.Signal) string { return sig.String() }
