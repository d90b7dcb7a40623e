// Package buffer implements the line store of the editor: an ordered sequence
// of text lines with a cursor on the current line.
//
// Line numbers are 1-based. The cursor is valid whenever the buffer is
// non-empty; LineNum returns 0 for an empty buffer.
package buffer

// Buffer is an ordered sequence of lines with a current line. The zero value
// is an empty buffer.
type Buffer struct {
	lines []string
	// Index of the current line. Only meaningful when lines is non-empty.
	cur int
}

// New returns a Buffer holding the given lines, with the cursor on the last
// line.
func New(lines ...string) *Buffer {
	b := &Buffer{}
	b.Replace(lines)
	return b
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Empty reports whether the buffer has no lines.
func (b *Buffer) Empty() bool { return len(b.lines) == 0 }

// LineNum returns the 1-based number of the current line, or 0 if the buffer
// is empty.
func (b *Buffer) LineNum() int {
	if b.Empty() {
		return 0
	}
	return b.cur + 1
}

// Current returns the current line. The second return value is false if the
// buffer is empty.
func (b *Buffer) Current() (string, bool) {
	if b.Empty() {
		return "", false
	}
	return b.lines[b.cur], true
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Each calls f with each line and its 1-based number, in order. It stops
// early if f returns false.
func (b *Buffer) Each(f func(n int, line string) bool) {
	for i, line := range b.lines {
		if !f(i+1, line) {
			return
		}
	}
}

// Goto moves the cursor to line n. It fails with an InvalidAddress error
// without moving the cursor unless 1 <= n <= Len().
func (b *Buffer) Goto(n int) error {
	if n < 1 || n > len(b.lines) {
		return ErrInvalidAddress
	}
	b.cur = n - 1
	return nil
}

// Move moves the cursor by delta lines. The bounds are checked before the
// cursor is touched; a move that would leave [1, Len()] fails with an
// InvalidAddress error and leaves the cursor where it was.
func (b *Buffer) Move(delta int) error {
	if b.Empty() {
		return ErrInvalidAddress
	}
	return b.Goto(b.LineNum() + delta)
}

// Append inserts text after the current line and makes it the current line.
// In an empty buffer, text becomes the sole line.
func (b *Buffer) Append(text string) {
	if b.Empty() {
		b.lines = append(b.lines, text)
		b.cur = 0
		return
	}
	b.insert(b.cur+1, text)
	b.cur++
}

// Prepend inserts text before the current line and makes it the current line;
// the current line number stays the same. In an empty buffer, it behaves like
// Append.
func (b *Buffer) Prepend(text string) {
	if b.Empty() {
		b.Append(text)
		return
	}
	b.insert(b.cur, text)
}

// Replace discards all lines and replaces them with the given lines. The
// cursor is put on the last line.
func (b *Buffer) Replace(lines []string) {
	b.lines = append([]string(nil), lines...)
	b.cur = max(len(b.lines)-1, 0)
}

func (b *Buffer) insert(i int, text string) {
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = text
}
