// Package progtest contains utilities for testing subprograms.
package progtest

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"src.edpp.dev/pkg/env"
	"src.edpp.dev/pkg/must"
	"src.edpp.dev/pkg/prog"
	"src.edpp.dev/pkg/testutil"
)

// Fixture is a test fixture suitable for testing programs. Its stdin, stdout
// and stderr are pipes; output is drained in the background so that programs
// writing a lot of output do not block.
type Fixture struct {
	pipes [3]*pipe
}

type pipe struct {
	r, w      *os.File
	closeOnce sync.Once
	output    chan string
	outputStr string
}

func (p *pipe) closeWriter() { p.closeOnce.Do(func() { p.w.Close() }) }

// Output returns everything written to the pipe, closing the write end first.
func (p *pipe) Output() string {
	p.closeWriter()
	if p.output != nil {
		p.outputStr = <-p.output
		p.output = nil
	}
	return p.outputStr
}

func makeInPipe() *pipe {
	r, w := must.Pipe()
	return &pipe{r: r, w: w}
}

func makeOutPipe() *pipe {
	r, w := must.Pipe()
	output := make(chan string, 1)
	go func() {
		b, err := io.ReadAll(r)
		if err != nil {
			panic(err)
		}
		output <- string(b)
	}()
	return &pipe{r: r, w: w, output: output}
}

// Setup sets up a test fixture in a new temporary directory, which also
// becomes $HOME. XDG directories are unset, so that the program under test
// does not find the user's rc file or history. Everything is cleaned up when
// the test finishes.
//
// The program reads from stdin until FeedIn is called, which supplies the
// whole input and closes it.
func Setup(c testutil.Cleanuper) *Fixture {
	dir := testutil.InTempDir(c)
	testutil.Setenv(c, env.HOME, dir)
	testutil.Unsetenv(c, env.XDG_CONFIG_HOME)
	testutil.Unsetenv(c, env.XDG_STATE_HOME)
	f := &Fixture{[3]*pipe{makeInPipe(), makeOutPipe(), makeOutPipe()}}
	c.Cleanup(f.cleanup)
	return f
}

// Fds returns the file descriptors in the fixture.
func (f *Fixture) Fds() [3]*os.File {
	return [3]*os.File{f.pipes[0].r, f.pipes[1].w, f.pipes[2].w}
}

// FeedIn feeds input to the standard input and closes it.
func (f *Fixture) FeedIn(s string) {
	must.OK1(f.pipes[0].w.WriteString(s))
	f.pipes[0].closeWriter()
}

// Output returns what has been written to the stdout (fd=1) or stderr (fd=2)
// of the fixture. It closes the corresponding pipe, so the program must have
// finished.
func (f *Fixture) Output(fd int) string {
	return f.pipes[fd].Output()
}

// TestOut tests that the output on the given fd matches the given text.
func (f *Fixture) TestOut(t *testing.T, fd int, wantOut string) {
	t.Helper()
	if out := f.Output(fd); out != wantOut {
		t.Errorf("got out %q, want %q", out, wantOut)
	}
}

// TestOutSnippet tests that the output on the given fd contains the given
// text.
func (f *Fixture) TestOutSnippet(t *testing.T, fd int, wantOutSnippet string) {
	t.Helper()
	if out := f.Output(fd); !strings.Contains(out, wantOutSnippet) {
		t.Errorf("got out %q, want string containing %q", out, wantOutSnippet)
	}
}

func (f *Fixture) cleanup() {
	for _, p := range f.pipes {
		p.closeWriter()
		p.Output()
		p.r.Close()
	}
}

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string

	want result
}

type result struct {
	exitCode int
	stdout   output
	stderr   output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatEdpp returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test like:
//
//	Test(t, someProgram,
//		ThatEdpp("-v").WritesStdout("foo"))
//
// will run someProgram with arguments []string{"edpp", "-v"} and expects it to
// exit with 0 and write "foo" to stdout.
func ThatEdpp(args ...string) Case {
	return Case{args: append([]string{"edpp"}, args...)}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	Test(t, someProgram,
//		ThatEdpp("-help").DoesNothing())
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exitCode = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program. Each case runs with a fresh
// Fixture.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			r := run(t, p, c.args, c.stdin)
			if r.exitCode != c.want.exitCode {
				t.Errorf("got exit code %v, want %v", r.exitCode, c.want.exitCode)
			}
			if !matchOutput(r.stdout.content, c.want.stdout) {
				t.Errorf("got stdout %q, want %s", r.stdout.content, c.want.stdout)
			}
			if !matchOutput(r.stderr.content, c.want.stderr) {
				t.Errorf("got stderr %q, want %s", r.stderr.content, c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin, in a fresh Fixture.
// It returns the exit code and the output on stdout and stderr.
func Run(t *testing.T, p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	t.Helper()
	r := run(t, p, append([]string{"edpp"}, args...), stdin)
	return r.exitCode, r.stdout.content, r.stderr.content
}

func run(t *testing.T, p prog.Program, args []string, stdin string) result {
	f := Setup(t)
	f.FeedIn(stdin)
	exit := prog.Run(f.Fds(), args, p)
	return result{exit, output{content: f.Output(1)}, output{content: f.Output(2)}}
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}
