package histutil

import "src.edpp.dev/pkg/store/storedefs"

// NewMemStore returns a Store that stores command history in memory, keeping
// at most limit commands. A limit of 0 or less means no limit.
func NewMemStore(limit int, texts ...string) Store {
	s := &memStore{limit: limit}
	for _, text := range texts {
		s.AddCmd(text)
	}
	return s
}

type memStore struct {
	cmds    []storedefs.Cmd
	limit   int
	nextSeq int
}

func (s *memStore) AllCmds() ([]storedefs.Cmd, error) {
	return append([]storedefs.Cmd(nil), s.cmds...), nil
}

func (s *memStore) AddCmd(text string) (int, error) {
	seq := s.nextSeq
	s.nextSeq++
	s.cmds = append(s.cmds, storedefs.Cmd{Text: text, Seq: seq})
	if s.limit > 0 && len(s.cmds) > s.limit {
		s.cmds = s.cmds[len(s.cmds)-s.limit:]
	}
	return seq, nil
}
