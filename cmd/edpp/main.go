// edpp is a small line editor in the tradition of ed. It keeps a buffer of
// text lines with a current line, and reads one command per line: addresses
// to move around, a and i to add text, p and n to print, w and e to save and
// load files, and q to quit.
package main

import (
	"os"

	"src.edpp.dev/pkg/buildinfo"
	"src.edpp.dev/pkg/prog"
	"src.edpp.dev/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program, shell.HistoryProgram{}, shell.Program{})))
}
