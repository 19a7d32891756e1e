package store

import (
	"github.com/iov-one/tokenomics/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is a KVStore persisted in a goleveldb database. Batches are
// written atomically.
type LevelDB struct {
	db *leveldb.DB
}

var _ KVStore = (*LevelDB)(nil)

// OpenLevelDB opens or creates a database in given directory.
func OpenLevelDB(dir string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %q: %s", dir, err)
	}
	return &LevelDB{db: db}, nil
}

// MemLevelDB returns a database that keeps all data in memory.
func MemLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open memory storage: %s", err)
	}
	return &LevelDB{db: db}, nil
}

func (l *LevelDB) Get(key []byte) ([]byte, error) {
	val, err := l.db.Get(key, nil)
	switch {
	case err == leveldb.ErrNotFound:
		return nil, nil
	case err != nil:
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return val, nil
}

func (l *LevelDB) Has(key []byte) (bool, error) {
	ok, err := l.db.Has(key, nil)
	if err != nil {
		return false, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ok, nil
}

func (l *LevelDB) Set(key, value []byte) error {
	if err := l.db.Put(key, value, nil); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (l *LevelDB) Delete(key []byte) error {
	if err := l.db.Delete(key, nil); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (l *LevelDB) Iterator(start, end []byte) (Iterator, error) {
	return newLevelIterator(l.db.NewIterator(&util.Range{Start: start, Limit: end}, nil), false), nil
}

func (l *LevelDB) ReverseIterator(start, end []byte) (Iterator, error) {
	return newLevelIterator(l.db.NewIterator(&util.Range{Start: start, Limit: end}, nil), true), nil
}

// NewBatch returns a batch that is written atomically and synced to disk.
func (l *LevelDB) NewBatch() Batch {
	return &levelBatch{db: l.db, batch: new(leveldb.Batch)}
}

// Close releases the database.
func (l *LevelDB) Close() error {
	if err := l.db.Close(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

type levelBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelBatch) Set(key, value []byte) error {
	b.batch.Put(key, value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	b.batch.Delete(key)
	return nil
}

func (b *levelBatch) Write() error {
	defer b.batch.Reset()
	if err := b.db.Write(b.batch, &opt.WriteOptions{Sync: true}); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

type levelIterator struct {
	it      iterator.Iterator
	valid   bool
	reverse bool
}

func newLevelIterator(it iterator.Iterator, reverse bool) *levelIterator {
	li := &levelIterator{it: it, reverse: reverse}
	if reverse {
		li.valid = it.Last()
	} else {
		li.valid = it.First()
	}
	return li
}

func (l *levelIterator) Valid() bool {
	return l.valid
}

func (l *levelIterator) Next() error {
	if !l.valid {
		panic("advanced past the end")
	}
	if l.reverse {
		l.valid = l.it.Prev()
	} else {
		l.valid = l.it.Next()
	}
	if err := l.it.Error(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// Key returns a copy, the iterator reuses its buffers.
func (l *levelIterator) Key() []byte {
	return append([]byte{}, l.it.Key()...)
}

func (l *levelIterator) Value() []byte {
	return append([]byte{}, l.it.Value()...)
}

func (l *levelIterator) Close() {
	l.it.Release()
}
