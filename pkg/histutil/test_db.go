package histutil

import "src.edpp.dev/pkg/store/storedefs"

// TestDB is an implementation of the DB interface that can be used for testing.
type TestDB struct {
	AllCmds []string

	OneOffError error
}

func (s *TestDB) error() error {
	err := s.OneOffError
	s.OneOffError = nil
	return err
}

func (s *TestDB) NextCmdSeq() (int, error) {
	return len(s.AllCmds), s.error()
}

func (s *TestDB) AddCmd(cmd string) (int, error) {
	if s.OneOffError != nil {
		return -1, s.error()
	}
	s.AllCmds = append(s.AllCmds, cmd)
	return len(s.AllCmds) - 1, nil
}

func (s *TestDB) CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error) {
	if err := s.error(); err != nil {
		return nil, err
	}
	var cmds []storedefs.Cmd
	for i := max(from, 0); i < upto && i < len(s.AllCmds); i++ {
		cmds = append(cmds, storedefs.Cmd{Text: s.AllCmds[i], Seq: i})
	}
	return cmds, nil
}
