// Package syscmd runs external commands through the system shell.
package syscmd

import (
	"io"
	"os/exec"
)

// Shell is the shell used to run commands.
var Shell = "/bin/sh"

// Run runs cmd with the given standard streams and waits for it to finish.
// The returned error is non-nil if the command cannot be started or exits
// with a non-zero status.
func Run(cmd string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := exec.Command(Shell, "-c", cmd)
	c.Stdin, c.Stdout, c.Stderr = stdin, stdout, stderr
	return c.Run()
}

// Output runs cmd and returns its standard output and standard error combined.
// The output is returned even if the command exits with a non-zero status; in
// that case the error is an *exec.ExitError. If the command cannot be
// started, the output is empty.
func Output(cmd string) (string, error) {
	out, err := exec.Command(Shell, "-c", cmd).CombinedOutput()
	return string(out), err
}
