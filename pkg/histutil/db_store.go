package histutil

import "src.edpp.dev/pkg/store/storedefs"

// DB is the interface of the storage database.
type DB interface {
	NextCmdSeq() (int, error)
	AddCmd(cmd string) (int, error)
	CmdsWithSeq(from, upto int) ([]storedefs.Cmd, error)
}

// NewDBStore returns a Store backed by a database.
func NewDBStore(db DB) Store {
	return dbStore{db}
}

type dbStore struct {
	db DB
}

func (s dbStore) AllCmds() ([]storedefs.Cmd, error) {
	upper, err := s.db.NextCmdSeq()
	if err != nil {
		return nil, err
	}
	return s.db.CmdsWithSeq(0, upper)
}

func (s dbStore) AddCmd(text string) (int, error) {
	return s.db.AddCmd(text)
}
