//go:build unix

package syscmd

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"src.edpp.dev/pkg/testutil"
)

func TestRun(t *testing.T) {
	var stdout, stderr strings.Builder
	err := Run("read x; echo out $x; echo err >&2", strings.NewReader("in\n"), &stdout, &stderr)
	if err != nil {
		t.Errorf("Run -> %v", err)
	}
	if stdout.String() != "out in\n" || stderr.String() != "err\n" {
		t.Errorf("stdout %q, stderr %q", stdout.String(), stderr.String())
	}
}

func TestRun_ExitStatus(t *testing.T) {
	err := Run("exit 3", nil, nil, nil)
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 3 {
		t.Errorf("Run(exit 3) -> %v, want exit status 3", err)
	}
}

func TestOutput_CombinesStreams(t *testing.T) {
	out, err := Output("echo a; echo b >&2")
	if out != "a\nb\n" || err != nil {
		t.Errorf("Output -> (%q, %v), want (%q, nil)", out, err, "a\nb\n")
	}
}

func TestOutput_CannotSpawn(t *testing.T) {
	testutil.Set(t, &Shell, "/nonexistent/shell")
	out, err := Output("true")
	if out != "" || err == nil {
		t.Errorf("Output with bad shell -> (%q, %v), want (\"\", non-nil)", out, err)
	}
}
