// Package shell is the entry point for the interactive editor.
package shell

import (
	"fmt"
	"os"

	"src.edpp.dev/pkg/edit"
	"src.edpp.dev/pkg/errutil"
	"src.edpp.dev/pkg/logutil"
	"src.edpp.dev/pkg/prog"
	"src.edpp.dev/pkg/rc"
	"src.edpp.dev/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the editor subprogram.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("at most one file may be given")
	}
	filename := ""
	if len(args) == 1 {
		if args[0] == "-" {
			return prog.BadUsage("Using '-' with edpp for scripting is not supported")
		}
		filename = args[0]
	}

	cfg := loadRC(fds, f)
	closeLog := setupLog(fds, f, cfg)

	s := edit.NewSession(fds[1], fds[2], f.Verbose || cfg.Verbose)
	if filename != "" {
		if size, err := s.Open(filename); err == nil {
			fmt.Fprintln(fds[1], size)
		}
		s.DisplayError()
	}

	history, closeHistory := openHistory(fds, f, cfg, sys.IsATTY(fds[0].Fd()))
	stopSignals := handleSignals(s, fds[2])

	prompt := f.Prompt
	if prompt == "" {
		prompt = cfg.Prompt
	}
	Interact(fds, s, &InteractConfig{Prompt: prompt, History: history})

	stopSignals()
	err := errutil.Multi(closeHistory(), closeLog())
	if err != nil {
		logger.Println("cleanup:", err)
	}
	return nil
}

// Loads the rc file unless -norc is given. Problems with the file are
// reported as warnings, and the default configuration is used instead.
func loadRC(fds [3]*os.File, f *prog.Flags) *rc.Config {
	if f.NoRc {
		return rc.Default()
	}
	path := f.RC
	if path == "" {
		var err error
		path, err = rc.Path()
		if err != nil {
			fmt.Fprintln(fds[2], "Warning:", err)
			return rc.Default()
		}
	}
	cfg, err := rc.Load(path)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
	}
	return cfg
}

// Sets up the debug log from the rc file, unless -log was given. It returns a
// function that closes the log file opened here.
func setupLog(fds [3]*os.File, f *prog.Flags, cfg *rc.Config) func() error {
	noClose := func() error { return nil }
	if f.Log != "" || cfg.Log.File == "" {
		return noClose
	}
	err := logutil.SetOutputFile(cfg.Log.File, logutil.Rotation{
		MaxSizeMB: cfg.Log.MaxSizeMB, MaxBackups: cfg.Log.MaxBackups})
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
		return noClose
	}
	return logutil.Close
}
