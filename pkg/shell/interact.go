package shell

import (
	"fmt"
	"io"
	"os"
	"time"

	"src.edpp.dev/pkg/edit"
	"src.edpp.dev/pkg/histutil"
	"src.edpp.dev/pkg/sys"
)

// InteractConfig keeps configuration for the interactive loop.
type InteractConfig struct {
	// Prompt is printed before each command. Nothing is printed in insert
	// mode.
	Prompt string
	// History receives every non-empty command line. It may be nil.
	History histutil.Store
}

// Interact reads lines from fds[0] and dispatches them to the session until
// the session ends or the input is exhausted. The pending error, if any, is
// displayed after each line.
func Interact(fds [3]*os.File, s *edit.Session, cfg *InteractConfig) {
	defer handlePanic(fds[2])

	r := newMinReader(fds[0], fds[1])
	d := newDispatcher(s, fds)

	cooldown := time.Second
	for {
		prompt := ""
		if s.Mode == edit.CommandMode {
			prompt = cfg.Prompt
		}
		line, err := r.ReadLine(prompt)
		if err != nil && err != io.EOF {
			fmt.Fprintln(fds[2], "Read error:", err)
			fmt.Fprintln(fds[2], "Retrying in", cooldown)
			time.Sleep(cooldown)
			if cooldown < time.Minute {
				cooldown *= 2
			}
			continue
		}
		cooldown = time.Second

		if line != "" || err == nil {
			if s.Mode == edit.CommandMode {
				record(cfg.History, line)
			}
			quit := d.dispatch(line)
			s.DisplayError()
			if quit {
				return
			}
		}

		if err == io.EOF {
			// Like "q" followed by "Q": a dirty buffer gets its warning, but
			// there is no more input to confirm with.
			if !s.CheckQuit() {
				s.DisplayError()
			}
			logger.Println("end of input:", s)
			return
		}
	}
}

func record(h histutil.Store, line string) {
	if h == nil {
		return
	}
	if _, err := histutil.Record(h, line); err != nil {
		logger.Println("failed to record command:", err)
	}
}

// Dumps the stack and re-raises a panic from the interactive loop, so that a
// bug is reported along with the state of all goroutines.
func handlePanic(stderr io.Writer) {
	r := recover()
	if r != nil {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, sys.DumpStack())
		fmt.Fprintln(stderr)
		panic(r)
	}
}
