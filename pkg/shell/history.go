package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"src.edpp.dev/pkg/histutil"
	"src.edpp.dev/pkg/prog"
	"src.edpp.dev/pkg/rc"
	"src.edpp.dev/pkg/store"
)

// Returns the path of the history database, respecting the -db flag and the
// history.db setting in that order.
func dbPath(f *prog.Flags, cfg *rc.Config) (string, error) {
	if f.DB != "" {
		return f.DB, nil
	}
	if cfg.History.DB != "" {
		return cfg.History.DB, nil
	}
	return rc.DBPath()
}

// Opens the persistent history database and trims it to the configured size.
func openDB(f *prog.Flags, cfg *rc.Config) (store.DBStore, error) {
	path, err := dbPath(f, cfg)
	if err != nil {
		return nil, err
	}
	err = os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return nil, err
	}
	db, err := store.NewStore(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	err = db.Trim(cfg.History.Size)
	if err != nil {
		logger.Println("failed to trim history:", err)
	}
	return db, nil
}

// Returns the history store for an interactive session and a function to
// close it. Commands are kept in the database when history is explicitly
// enabled, or when it is not disabled and stdin is a terminal; otherwise they
// are only kept in memory. When the database cannot be opened, a warning is
// printed and the memory store is used.
func openHistory(fds [3]*os.File, f *prog.Flags, cfg *rc.Config, tty bool) (histutil.Store, func() error) {
	mem := histutil.NewMemStore(cfg.History.Size)
	noClose := func() error { return nil }

	forced := cfg.History.Enabled != nil && *cfg.History.Enabled
	if !cfg.HistoryEnabled() || !(tty || forced) {
		return mem, noClose
	}
	db, err := openDB(f, cfg)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
		fmt.Fprintln(fds[2], "Command history will not be saved.")
		return mem, noClose
	}
	return histutil.NewDBStore(db), db.Close
}

// HistoryProgram is the subprogram that prints the persistent command history
// for "edpp -history".
type HistoryProgram struct{}

func (HistoryProgram) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	if !f.History {
		return prog.ErrNotSuitable
	}
	if len(args) > 0 {
		return prog.BadUsage("-history takes no arguments")
	}
	cfg := loadRC(fds, f)
	db, err := openDB(f, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	cmds, err := histutil.NewDBStore(db).AllCmds()
	if err != nil {
		return err
	}
	for _, cmd := range cmds {
		fmt.Fprintf(fds[1], "%5d  %s\n", cmd.Seq, cmd.Text)
	}
	return nil
}
