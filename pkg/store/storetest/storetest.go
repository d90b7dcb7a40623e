// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"src.edpp.dev/pkg/store/storedefs"
)

var cmds = []string{"a", ",n", "w notes.txt", "q"}

// TestCmd tests the command history functionality of a Store.
func TestCmd(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextCmdSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (1, nil)",
			startSeq, err)
	}

	// AddCmd
	for i, cmd := range cmds {
		wantSeq := startSeq + i
		seq, err := store.AddCmd(cmd)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddCmd(%v) -> (%v, %v), want (%v, nil)",
				cmd, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextCmdSeq()
	wantedEndSeq := startSeq + len(cmds)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextCmdSeq() -> (%v, %v), want (%v, nil)",
			endSeq, err, wantedEndSeq)
	}

	// CmdsWithSeq
	wantCmdWithSeqs := make([]storedefs.Cmd, len(cmds))
	for i, cmd := range cmds {
		wantCmdWithSeqs[i] = storedefs.Cmd{Text: cmd, Seq: i + 1}
	}
	for i := 0; i < len(cmds); i++ {
		for j := i; j <= len(cmds); j++ {
			cmdWithSeqs, err := store.CmdsWithSeq(i+1, j+1)
			if diff := cmp.Diff(wantCmdWithSeqs[i:j], cmdWithSeqs, cmpopts.EquateEmpty()); diff != "" || err != nil {
				t.Errorf("store.CmdsWithSeq(%v, %v) -> error %v, diff (-want +got):\n%s",
					i+1, j+1, err, diff)
			}
		}
	}

	// Cmd
	for i, wantedCmd := range cmds {
		seq := i + startSeq
		cmd, err := store.Cmd(seq)
		if cmd != wantedCmd || err != nil {
			t.Errorf("store.Cmd(%v) -> (%v, %v), want (%v, nil)",
				seq, cmd, err, wantedCmd)
		}
	}

	// Cmd on a missing sequence number
	cmd, err := store.Cmd(endSeq)
	if cmd != "" || !matchErr(err, storedefs.ErrNoMatchingCmd) {
		t.Errorf("store.Cmd(%v) -> (%q, %v), want (\"\", %v)",
			endSeq, cmd, err, storedefs.ErrNoMatchingCmd)
	}
}

func matchErr(e1, e2 error) bool {
	return (e1 == nil && e2 == nil) || (e1 != nil && e2 != nil && e1.Error() == e2.Error())
}
