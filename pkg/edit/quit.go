package edit

// CheckQuit reports whether the session may end. A session whose buffer has
// not been edited may always end, and such a call does not count towards the
// quit protocol. Otherwise the first call returns false and makes a "buffer
// modified" warning pending; later calls return true, until a successful write
// or read resets the count.
func (s *Session) CheckQuit() bool {
	if !s.edited {
		return true
	}
	s.quitCount++
	if s.quitCount > 1 {
		return true
	}
	s.err.set(ErrFileModified.Error())
	return false
}

func (s *Session) resetQuit() {
	s.edited = false
	s.quitCount = 0
}
