package edit

import (
	"errors"
	"os"
	"strings"
	"testing"

	"src.edpp.dev/pkg/buffer"
	"src.edpp.dev/pkg/must"
	"src.edpp.dev/pkg/syscmd"
	"src.edpp.dev/pkg/testutil"
)

func TestOpen(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("notes", "one\ntwo\nthree\n")

	f := setup()
	size, err := f.Open("notes")
	if err != nil || size != 14 {
		t.Errorf("Open -> (%d, %v), want (14, nil)", size, err)
	}
	f.testLines(t, "one", "two", "three")
	f.testCurrent(t, "three", 3)
	if f.Filename() != "notes" || f.Edited() {
		t.Errorf("Filename() = %q, Edited() = %v", f.Filename(), f.Edited())
	}
}

func TestOpen_NonexistentKeepsFilename(t *testing.T) {
	testutil.InTempDir(t)

	f := setup()
	_, err := f.Open("new-file")
	if !errors.Is(err, buffer.ErrNotFound) {
		t.Errorf("Open -> %v, want not found", err)
	}
	if f.Filename() != "new-file" {
		t.Errorf("Filename() = %q, want %q", f.Filename(), "new-file")
	}
	if !strings.Contains(f.diag.String(), "new-file: no such file or directory") {
		t.Errorf("diagnostic output %q", f.diag.String())
	}

	f.InsertLine("created")
	if _, err := f.Write(""); err != nil {
		t.Errorf("Write -> %v", err)
	}
	if content := must.ReadFileString("new-file"); content != "created\n" {
		t.Errorf("file content %q", content)
	}
}

func TestReplace(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("other", "x\ny\n")

	f := setup("old")
	f.InsertLine("dirty")
	if _, err := f.Replace("other"); err != nil {
		t.Fatalf("Replace -> %v", err)
	}
	f.testLines(t, "x", "y")
	f.testCurrent(t, "y", 2)
	if f.Edited() || f.Filename() != "other" {
		t.Errorf("Edited() = %v, Filename() = %q", f.Edited(), f.Filename())
	}
}

func TestReplace_NoFilename(t *testing.T) {
	f := setup("keep")
	if _, err := f.Replace(""); !errors.Is(err, buffer.ErrNoFilename) {
		t.Errorf("Replace(\"\") -> %v, want no filename", err)
	}
	f.testPending(t, "no current filename")
	f.testLines(t, "keep")
}

func TestReplace_UnreadableLeavesBuffer(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"secret": testutil.File{Perm: 0o000, Content: "hidden\n"},
	})

	f := setup("keep 1", "keep 2")
	f.Goto(1)
	_, err := f.Replace("secret")
	if !errors.Is(err, buffer.ErrPermissionDenied) {
		t.Errorf("Replace -> %v, want permission denied", err)
	}
	f.testLines(t, "keep 1", "keep 2")
	f.testCurrent(t, "keep 1", 1)
	f.testPending(t, "permission denied")
	if got := f.diag.String(); got != "secret: permission denied\n" {
		t.Errorf("diagnostic output %q", got)
	}
}

func TestWrite(t *testing.T) {
	testutil.InTempDir(t)

	f := setup()
	f.InsertLine("a")
	f.InsertLine("b")
	f.CheckQuit()
	size, err := f.Write("out")
	if err != nil || size != 4 {
		t.Errorf("Write -> (%d, %v), want (4, nil)", size, err)
	}
	if f.Edited() {
		t.Errorf("buffer still edited after Write")
	}
	if f.Filename() != "out" {
		t.Errorf("Filename() = %q, want %q", f.Filename(), "out")
	}

	// The quit protocol starts over after a write.
	f.InsertLine("c")
	if f.CheckQuit() {
		t.Errorf("CheckQuit() after write and edit = true, want false")
	}
}

func TestWrite_DoesNotChangeExistingFilename(t *testing.T) {
	testutil.InTempDir(t)

	f := setup("a")
	f.SetFilename("main")
	if _, err := f.Write("copy"); err != nil {
		t.Fatalf("Write -> %v", err)
	}
	if f.Filename() != "main" {
		t.Errorf("Filename() = %q, want %q", f.Filename(), "main")
	}
	if _, err := os.Stat("main"); err == nil {
		t.Errorf("Write to another name created the session file")
	}
}

func TestWrite_NoFilename(t *testing.T) {
	testutil.InTempDir(t)

	f := setup("a")
	f.InsertLine("b")
	if _, err := f.Write(""); !errors.Is(err, buffer.ErrNoFilename) {
		t.Errorf("Write(\"\") -> %v, want no filename", err)
	}
	f.testPending(t, "no current filename")
	if !f.Edited() {
		t.Errorf("failed Write cleared the edited flag")
	}
	if entries := must.OK1(os.ReadDir(".")); len(entries) != 0 {
		t.Errorf("Write(\"\") created files: %v", entries)
	}
}

func TestWrite_ReadOnly(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(testutil.Dir{
		"ro": testutil.File{Perm: 0o444, Content: "original\n"},
	})

	f := setup("new")
	f.InsertLine("content")
	if _, err := f.Write("ro"); !errors.Is(err, buffer.ErrPermissionDenied) {
		t.Errorf("Write(ro) -> %v, want permission denied", err)
	}
	if content := must.ReadFileString("ro"); content != "original\n" {
		t.Errorf("read-only file changed to %q", content)
	}
	if !f.Edited() {
		t.Errorf("failed Write cleared the edited flag")
	}
}

func TestDisplayFilename(t *testing.T) {
	f := setup()
	if err := f.DisplayFilename(); !errors.Is(err, buffer.ErrNoFilename) {
		t.Errorf("DisplayFilename -> %v, want no filename", err)
	}
	f.testPending(t, "no current filename")

	f.SetFilename("notes")
	if err := f.DisplayFilename(); err != nil {
		t.Errorf("DisplayFilename -> %v", err)
	}
	if got := f.out.String(); got != "notes\n" {
		t.Errorf("output %q, want %q", got, "notes\n")
	}
}

func TestReadCommand(t *testing.T) {
	f := setup("old")
	size, err := f.ReadCommand("echo one; echo two >&2")
	if err != nil || size != 8 {
		t.Errorf("ReadCommand -> (%d, %v), want (8, nil)", size, err)
	}
	f.testLines(t, "one", "two")
	f.testCurrent(t, "two", 2)
	if !f.Edited() {
		t.Errorf("buffer not edited after ReadCommand")
	}
}

func TestReadCommand_NonZeroExit(t *testing.T) {
	f := setup()
	if _, err := f.ReadCommand("echo partial; exit 1"); err != nil {
		t.Errorf("ReadCommand -> %v, want nil", err)
	}
	f.testLines(t, "partial")
	f.testPending(t, "")
}

func TestReadCommand_CannotStart(t *testing.T) {
	testutil.Set(t, &syscmd.Shell, "/nonexistent/shell")
	f := setup("keep")
	_, err := f.ReadCommand("true")
	if !errors.Is(err, buffer.ErrOpen) {
		t.Errorf("ReadCommand -> %v, want open error", err)
	}
	f.testLines(t, "keep")
	f.testPending(t, "cannot open file")
	if got := f.diag.String(); got != "!true: no such file or directory\n" {
		t.Errorf("diagnostic output %q", got)
	}
}
