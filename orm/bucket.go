package orm

import (
	"fmt"
	"regexp"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Bucket is a prefixed subspace of the DB holding models of one type.
type Bucket struct {
	name   string
	prefix []byte
}

// NewBucket creates a bucket to store data. Name must be unique across the
// application.
func NewBucket(name string) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
	}
}

// Name returns the name of the bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One loads the model stored under given key into dest. ErrNotFound is
// returned if there is no such key.
func (b Bucket) One(db tokenomics.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return Unmarshal(raw, dest)
}

// Has returns true if a model is stored under given key.
func (b Bucket) Has(db tokenomics.ReadOnlyKVStore, key []byte) (bool, error) {
	return db.Has(b.DBKey(key))
}

// Put validates and writes the model under given key, overwriting any
// previous value.
func (b Bucket) Put(db tokenomics.KVStore, key []byte, m Model) error {
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "%s model", b.name)
	}
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(key), raw)
}

// Delete removes the model stored under given key. ErrNotFound is returned
// if there is no such key.
func (b Bucket) Delete(db tokenomics.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	ok, err := db.Has(dbkey)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return db.Delete(dbkey)
}

// Visit calls fn for each entry of this bucket in ascending key order.
// Given key is stripped of the bucket prefix. Iteration stops on the first
// error returned by fn.
func (b Bucket) Visit(db tokenomics.ReadOnlyKVStore, fn func(key, value []byte) error) error {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return err
	}
	defer it.Close()

	for it.Valid() {
		if err := fn(it.Key()[len(b.prefix):], it.Value()); err != nil {
			return err
		}
		if err := it.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of entries stored in this bucket.
func (b Bucket) Count(db tokenomics.ReadOnlyKVStore) (int, error) {
	var n int
	err := b.Visit(db, func([]byte, []byte) error {
		n++
		return nil
	})
	return n, err
}

// prefixEnd returns the smallest key greater than all keys starting with
// given prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
