package shell

import (
	"bufio"
	"fmt"
	"io"

	"src.edpp.dev/pkg/strutil"
)

// This type is the interface that the line reader has to satisfy. It is needed
// so that a line reader with editing capabilities can be plugged in later
// without changing the interaction loop.
type lineReader interface {
	// ReadLine reads one line without the line ending. At the end of input it
	// returns the last, unterminated line if any, along with io.EOF.
	ReadLine(prompt string) (string, error)
}

type minReader struct {
	in  *bufio.Reader
	out io.Writer
}

func newMinReader(in io.Reader, out io.Writer) *minReader {
	return &minReader{bufio.NewReader(in), out}
}

func (r *minReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	return strutil.ChopLineEnding(line), err
}
