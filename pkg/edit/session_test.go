package edit

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"src.edpp.dev/pkg/buffer"
	"src.edpp.dev/pkg/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fixture struct {
	*Session
	out, diag *bytes.Buffer
}

func setup(lines ...string) fixture {
	var out, diag bytes.Buffer
	s := NewSession(&out, &diag, false)
	s.buf.Replace(lines)
	return fixture{s, &out, &diag}
}

func (f fixture) testLines(t *testing.T, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, f.Lines(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func (f fixture) testCurrent(t *testing.T, wantLine string, wantNum int) {
	t.Helper()
	line, _ := f.Current()
	if line != wantLine || f.LineNum() != wantNum {
		t.Errorf("current line is %q at %d, want %q at %d",
			line, f.LineNum(), wantLine, wantNum)
	}
}

func (f fixture) testPending(t *testing.T, want string) {
	t.Helper()
	msg, pending := f.PendingError()
	if !pending {
		msg = ""
	}
	if msg != want {
		t.Errorf("pending error %q, want %q", msg, want)
	}
}

func TestGoto(t *testing.T) {
	f := setup("a", "b", "c")
	for n, want := range []string{"a", "b", "c"} {
		if err := f.Goto(n + 1); err != nil {
			t.Errorf("Goto(%d) -> %v", n+1, err)
		}
		f.testCurrent(t, want, n+1)
	}
	f.testPending(t, "")
}

func TestGoto_OutOfRange(t *testing.T) {
	for _, n := range []int{0, 4} {
		f := setup("a", "b", "c")
		f.Goto(2)
		err := f.Goto(n)
		if !errors.Is(err, buffer.ErrInvalidAddress) {
			t.Errorf("Goto(%d) -> %v, want invalid address", n, err)
		}
		f.testCurrent(t, "b", 2)
		f.testPending(t, "invalid address")
	}
}

func TestMove(t *testing.T) {
	f := setup("a", "b", "c", "d")
	f.Goto(1)
	if err := f.Move(2); err != nil {
		t.Errorf("Move(2) -> %v", err)
	}
	f.testCurrent(t, "c", 3)

	if err := f.Move(-1); err != nil {
		t.Errorf("Move(-1) -> %v", err)
	}
	f.testCurrent(t, "b", 2)
}

func TestMove_FailsWithoutMoving(t *testing.T) {
	f := setup("a", "b", "c")
	f.Goto(2)
	for _, delta := range []int{2, -2, 100, -100} {
		if err := f.Move(delta); !errors.Is(err, buffer.ErrInvalidAddress) {
			t.Errorf("Move(%d) -> %v, want invalid address", delta, err)
		}
		f.testCurrent(t, "b", 2)
	}
}

func TestInsertLine_AppendIntoEmpty(t *testing.T) {
	f := setup()
	f.Mode, f.Approach = InsertMode, Append
	f.InsertLine("a")
	f.InsertLine("b")

	f.testLines(t, "a", "b")
	f.testCurrent(t, "b", 2)
	if !f.Edited() {
		t.Errorf("buffer not marked as edited")
	}
}

func TestInsertLine_AppendAfterCurrent(t *testing.T) {
	f := setup("1", "2", "3")
	f.Goto(1)
	f.Approach = Append
	f.InsertLine("1a")
	f.InsertLine("1b")

	f.testLines(t, "1", "1a", "1b", "2", "3")
	f.testCurrent(t, "1b", 3)
}

func TestInsertLine_PrependRunAppendsAfterFirst(t *testing.T) {
	f := setup("x")
	f.Goto(1)
	f.Approach = Prepend

	f.InsertLine("y")
	f.testLines(t, "y", "x")
	f.testCurrent(t, "y", 1)
	if f.Approach != Append {
		t.Errorf("Approach after first prepend = %v, want Append", f.Approach)
	}

	f.InsertLine("z")
	f.testLines(t, "y", "z", "x")
	f.testCurrent(t, "z", 2)
}

func TestInsertLine_PrependIntoEmpty(t *testing.T) {
	f := setup()
	f.Approach = Prepend
	f.InsertLine("first")
	f.InsertLine("second")

	f.testLines(t, "first", "second")
	f.testCurrent(t, "second", 2)
}

func TestCheckQuit_CleanBuffer(t *testing.T) {
	f := setup("a")
	if !f.CheckQuit() {
		t.Errorf("CheckQuit() on clean buffer = false, want true")
	}
	f.testPending(t, "")
}

func TestCheckQuit_DirtyBuffer(t *testing.T) {
	f := setup()
	f.InsertLine("a")
	if f.CheckQuit() {
		t.Errorf("first CheckQuit() on dirty buffer = true, want false")
	}
	f.testPending(t, "warning: buffer modified")
	if !f.CheckQuit() {
		t.Errorf("second CheckQuit() on dirty buffer = false, want true")
	}
}

func TestCheckQuit_CleanCallsDoNotCount(t *testing.T) {
	f := setup("a")
	f.CheckQuit()
	f.CheckQuit()
	f.InsertLine("b")
	if f.CheckQuit() {
		t.Errorf("first CheckQuit() after edit = true, want false")
	}
	f.testPending(t, "warning: buffer modified")
}

func TestDisplayCurrentLine(t *testing.T) {
	f := setup("a", "b")
	f.Goto(1)
	f.DisplayCurrentLine(false)
	f.DisplayCurrentLine(true)
	if got, want := f.out.String(), "a\n1\ta\n"; got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestDisplayCurrentLine_Empty(t *testing.T) {
	f := setup()
	if err := f.DisplayCurrentLine(false); !errors.Is(err, buffer.ErrInvalidAddress) {
		t.Errorf("DisplayCurrentLine on empty buffer -> %v, want invalid address", err)
	}
	if f.out.Len() != 0 {
		t.Errorf("DisplayCurrentLine on empty buffer wrote %q", f.out.String())
	}
}

func TestDisplayAllLines(t *testing.T) {
	f := setup("a", "b", "c")
	f.Goto(2)
	f.DisplayAllLines(false)
	f.DisplayAllLines(true)
	want := "a\nb\nc\n1\ta\n2\tb\n3\tc\n"
	if got := f.out.String(); got != want {
		t.Errorf("output %q, want %q", got, want)
	}
	f.testCurrent(t, "b", 2)
}

func TestDisplayError(t *testing.T) {
	f := setup()
	f.DisplayError()
	if f.out.Len() != 0 {
		t.Errorf("DisplayError with no pending error wrote %q", f.out.String())
	}

	f.UnknownCommand()
	f.DisplayError()
	f.DisplayError()
	if got := f.out.String(); got != "?\n" {
		t.Errorf("quiet output %q, want %q", got, "?\n")
	}

	f.out.Reset()
	f.ToggleVerbose()
	f.Goto(5)
	f.DisplayError()
	if got := f.out.String(); got != "invalid address\n" {
		t.Errorf("verbose output %q, want %q", got, "invalid address\n")
	}
}

func TestDisplayError_LastErrorWins(t *testing.T) {
	f := setup()
	f.ToggleVerbose()
	f.UnknownCommand()
	f.Goto(1)
	f.DisplayError()
	if got := f.out.String(); got != "invalid address\n" {
		t.Errorf("output %q, want only the last error", got)
	}
}

func TestDisplayErrorOnce(t *testing.T) {
	f := setup()
	f.DisplayErrorOnce()
	if f.out.Len() != 0 {
		t.Errorf("DisplayErrorOnce before any error wrote %q", f.out.String())
	}

	f.UnknownCommand()
	f.DisplayError()
	f.out.Reset()
	f.DisplayErrorOnce()
	f.DisplayErrorOnce()
	if got, want := f.out.String(), "unknown command\nunknown command\n"; got != want {
		t.Errorf("output %q, want %q", got, want)
	}
}

func TestInterrupt(t *testing.T) {
	f := setup("a")
	f.Interrupt()
	f.DisplayError()
	if got := f.out.String(); got != "\n?\n" {
		t.Errorf("quiet output %q, want %q", got, "\n?\n")
	}

	f.out.Reset()
	f.ToggleVerbose()
	f.Interrupt()
	f.DisplayError()
	if got, want := f.out.String(), "\n"+InterruptMessage+"\n"; got != want {
		t.Errorf("verbose output %q, want %q", got, want)
	}
	f.testLines(t, "a")
}

func TestInterrupt_FromAnotherGoroutine(t *testing.T) {
	f := setup()
	done := make(chan struct{})
	go func() {
		f.Interrupt()
		close(done)
	}()
	<-done
	f.testPending(t, InterruptMessage)
}

func TestSession_String(t *testing.T) {
	f := setup("a")
	f.SetFilename("notes")
	want := `file="notes" lines=1 cur=1 mode=command edited=false`
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	testutil.Set(t, &f.Mode, InsertMode)
	if f.Mode.String() != "insert" {
		t.Errorf("InsertMode.String() = %q", f.Mode.String())
	}
}
