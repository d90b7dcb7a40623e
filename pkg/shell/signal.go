package shell

import (
	"io"
	"os"

	"src.edpp.dev/pkg/edit"
	"src.edpp.dev/pkg/sys"
)

// Replaced in tests.
var exit = os.Exit

// Starts delivering signals to the session and returns a function that stops
// the delivery.
func handleSignals(s *edit.Session, stderr io.Writer) func() {
	sigCh, stop := sys.NotifySignals()
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				logger.Println("signal", sys.SignalName(sig))
				handleSignal(sig, s, stderr)
			case <-done:
				return
			}
		}
	}()
	return func() {
		stop()
		close(done)
	}
}
