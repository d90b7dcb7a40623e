package edit

// InsertLine adds text to the buffer according to the current Approach and
// marks the buffer as edited. The new line becomes the current line.
func (s *Session) InsertLine(text string) {
	s.edited = true
	switch s.Approach {
	case Prepend:
		if s.buf.Empty() {
			s.afterPrepend()
			s.buf.Append(text)
			return
		}
		s.buf.Prepend(text)
		s.afterPrepend()
	default:
		s.buf.Append(text)
	}
}

// The rest of an insert run started with "i" appends after the first
// prepended line, so the lines end up in input order.
func (s *Session) afterPrepend() {
	s.Approach = Append
}
