package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storeConstructor func(t testing.TB) (base CacheableKVStore, cleanup func())

func memStore(t testing.TB) (CacheableKVStore, func()) {
	return MemStore(), func() {}
}

func levelStore(t testing.TB) (CacheableKVStore, func()) {
	s, err := NewMemCommitStore()
	require.NoError(t, err)
	return s, func() { require.NoError(t, s.Close()) }
}

func TestStores(t *testing.T) {
	constructors := map[string]storeConstructor{
		"btree":   memStore,
		"leveldb": levelStore,
	}
	for name, c := range constructors {
		t.Run(name+"/get set", func(t *testing.T) { testGetSet(t, c) })
		t.Run(name+"/conflicts", func(t *testing.T) { testConflicts(t, c) })
		t.Run(name+"/iterator", func(t *testing.T) { testIterator(t, c) })
	}
}

func assertGetHas(t testing.TB, kv ReadOnlyKVStore, key, want []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	ok, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, ok)
}

func testGetSet(t *testing.T, makeBase storeConstructor) {
	base, cleanup := makeBase(t)
	defer cleanup()

	k, v := []byte("french"), []byte("fry")
	assertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	assertGetHas(t, base, k, v, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	assertGetHas(t, cache, k2, v2, true)
	assertGetHas(t, base, k2, nil, false)

	require.NoError(t, cache.Write())
	assertGetHas(t, base, k, v, true)
	assertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()
	assertGetHas(t, base, k3, nil, false)

	// and commit another
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())
	assertGetHas(t, base, k, nil, false)
	assertGetHas(t, base, k2, v2, true)
}

func testConflicts(t *testing.T, makeBase storeConstructor) {
	base, cleanup := makeBase(t)
	defer cleanup()

	require.NoError(t, base.Set([]byte("a"), []byte("1")))
	require.NoError(t, base.Set([]byte("b"), []byte("2")))

	child := base.CacheWrap()
	require.NoError(t, child.Set([]byte("a"), []byte("11")))
	require.NoError(t, child.Set([]byte("c"), []byte("7")))
	require.NoError(t, child.Delete([]byte("b")))

	// the parent is unaffected until written
	assertGetHas(t, base, []byte("a"), []byte("1"), true)
	assertGetHas(t, base, []byte("b"), []byte("2"), true)
	assertGetHas(t, base, []byte("c"), nil, false)

	assertGetHas(t, child, []byte("a"), []byte("11"), true)
	assertGetHas(t, child, []byte("b"), nil, false)
	assertGetHas(t, child, []byte("c"), []byte("7"), true)

	require.NoError(t, child.Write())
	assertGetHas(t, base, []byte("a"), []byte("11"), true)
	assertGetHas(t, base, []byte("b"), nil, false)
	assertGetHas(t, base, []byte("c"), []byte("7"), true)
}

func testIterator(t *testing.T, makeBase storeConstructor) {
	base, cleanup := makeBase(t)
	defer cleanup()

	for i := 0; i < 6; i++ {
		require.NoError(t, base.Set([]byte(fmt.Sprintf("k%d", i)), []byte{byte(i)}))
	}
	cache := base.CacheWrap()
	require.NoError(t, cache.Delete([]byte("k2")))
	require.NoError(t, cache.Set([]byte("k3"), []byte("new")))
	require.NoError(t, cache.Set([]byte("k31"), []byte("ins")))

	cases := map[string]struct {
		start, end []byte
		reverse    bool
		want       []string
	}{
		"full range": {
			want: []string{"k0", "k1", "k3", "k31", "k4", "k5"},
		},
		"bounded range": {
			start: []byte("k1"),
			end:   []byte("k4"),
			want:  []string{"k1", "k3", "k31"},
		},
		"reverse full range": {
			reverse: true,
			want:    []string{"k5", "k4", "k31", "k3", "k1", "k0"},
		},
		"reverse bounded range": {
			start:   []byte("k2"),
			end:     []byte("k5"),
			reverse: true,
			want:    []string{"k4", "k31", "k3"},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var (
				it  Iterator
				err error
			)
			if tc.reverse {
				it, err = cache.ReverseIterator(tc.start, tc.end)
			} else {
				it, err = cache.Iterator(tc.start, tc.end)
			}
			require.NoError(t, err)
			defer it.Close()

			var got []string
			for ; it.Valid(); require.NoError(t, it.Next()) {
				got = append(got, string(it.Key()))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCommitStorePersists(t *testing.T) {
	db, err := MemLevelDB()
	require.NoError(t, err)
	s := NewCommitStore(db)

	require.NoError(t, s.Set([]byte("reserve"), []byte("10")))
	raw, err := db.Get([]byte("reserve"))
	require.NoError(t, err)
	assert.Nil(t, raw, "nothing is written before commit")

	require.NoError(t, s.Commit())
	raw, err = db.Get([]byte("reserve"))
	require.NoError(t, err)
	assert.Equal(t, []byte("10"), raw)

	// uncommitted changes are lost on close
	require.NoError(t, s.Set([]byte("reward"), []byte("5")))
	require.NoError(t, s.Close())
}

func TestSliceIterator(t *testing.T) {
	it := NewSliceIterator([]KV{
		{Key: []byte("burn"), Value: []byte("5")},
		{Key: []byte("release"), Value: []byte("7.5")},
	})
	defer it.Close()

	var got []string
	for ; it.Valid(); require.NoError(t, it.Next()) {
		got = append(got, string(it.Key())+"="+string(it.Value()))
	}
	assert.Equal(t, []string{"burn=5", "release=7.5"}, got)
	assert.Panics(t, func() { it.Next() })
}

func TestEmptyKVStoreIterators(t *testing.T) {
	var e EmptyKVStore

	it, err := e.Iterator(nil, nil)
	require.NoError(t, err)
	assert.False(t, it.Valid())
	it.Close()

	it, err = e.ReverseIterator([]byte("a"), []byte("z"))
	require.NoError(t, err)
	assert.False(t, it.Valid())
	it.Close()
}
