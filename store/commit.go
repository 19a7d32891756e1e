package store

import (
	"io"
)

// CommitStore collects all writes in a working cache layer that is flushed
// to the backend in a single batch on Commit.
type CommitStore struct {
	back KVStore
	work BTreeCacheWrap
}

var _ CommitKVStore = (*CommitStore)(nil)

// NewCommitStore returns a committing store on top of given backend. When
// the backend implements io.Closer it is released by Close.
func NewCommitStore(back KVStore) *CommitStore {
	return &CommitStore{
		back: back,
		work: NewBTreeCacheWrap(back, back.NewBatch(), nil),
	}
}

// NewMemCommitStore returns a committing store backed by an in-memory
// leveldb.
func NewMemCommitStore() (*CommitStore, error) {
	db, err := MemLevelDB()
	if err != nil {
		return nil, err
	}
	return NewCommitStore(db), nil
}

func (s *CommitStore) Get(key []byte) ([]byte, error) { return s.work.Get(key) }
func (s *CommitStore) Has(key []byte) (bool, error)   { return s.work.Has(key) }
func (s *CommitStore) Set(key, value []byte) error    { return s.work.Set(key, value) }
func (s *CommitStore) Delete(key []byte) error        { return s.work.Delete(key) }
func (s *CommitStore) NewBatch() Batch                { return s.work.NewBatch() }
func (s *CommitStore) CacheWrap() KVCacheWrap         { return s.work.CacheWrap() }

func (s *CommitStore) Iterator(start, end []byte) (Iterator, error) {
	return s.work.Iterator(start, end)
}

func (s *CommitStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return s.work.ReverseIterator(start, end)
}

// Commit writes all pending changes to the backend.
func (s *CommitStore) Commit() error {
	err := s.work.Write()
	s.work = NewBTreeCacheWrap(s.back, s.back.NewBatch(), s.work.free)
	return err
}

// Close releases the backend. Uncommitted changes are lost.
func (s *CommitStore) Close() error {
	s.work.Discard()
	if c, ok := s.back.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
