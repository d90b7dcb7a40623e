package fsutil

import (
	"testing"

	"src.edpp.dev/pkg/testutil"
	. "src.edpp.dev/pkg/tt"
)

func TestGetHome_UsesHOME(t *testing.T) {
	testutil.Setenv(t, "HOME", "/home/ed/")
	home, err := GetHome("")
	if home != "/home/ed" || err != nil {
		t.Errorf("GetHome() -> (%q, %v), want (%q, nil)", home, err, "/home/ed")
	}
}

func TestTildeAbbr(t *testing.T) {
	testutil.Setenv(t, "HOME", "/home/ed")
	Test(t, Fn("TildeAbbr", TildeAbbr), Table{
		Args("/home/ed").Rets("~"),
		Args("/home/ed/notes.txt").Rets("~/notes.txt"),
		Args("/home/editor/notes.txt").Rets("/home/editor/notes.txt"),
		Args("/etc/motd").Rets("/etc/motd"),
	})
}

func TestTildeAbbr_RootHomeIsNotAbbreviated(t *testing.T) {
	testutil.Setenv(t, "HOME", "/")
	if got := TildeAbbr("/etc/motd"); got != "/etc/motd" {
		t.Errorf("TildeAbbr -> %q, want unchanged", got)
	}
}
