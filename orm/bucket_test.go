package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Count int64  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	Data  []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *counter) Reset()         { *m = counter{} }
func (m *counter) String() string { return proto.CompactTextString(m) }
func (*counter) ProtoMessage()    {}

func (m *counter) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

func TestBucketPutOne(t *testing.T) {
	db := store.MemStore()
	b := NewBucket("counters")

	want := &counter{Name: "burned", Count: 5, Data: []byte{0xde, 0xad}}
	require.NoError(t, b.Put(db, []byte("a"), want))

	var got counter
	require.NoError(t, b.One(db, []byte("a"), &got))
	assert.Equal(t, want, &got)

	ok, err := b.Has(db, []byte("a"))
	require.NoError(t, err)
	assert.True(t, ok)

	err = b.One(db, []byte("missing"), &got)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	err = b.Put(db, []byte("b"), &counter{Count: 1})
	assert.True(t, errors.ErrEmpty.Is(err), "%+v", err)

	require.NoError(t, b.Delete(db, []byte("a")))
	err = b.Delete(db, []byte("a"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestBucketVisitIsolation(t *testing.T) {
	db := store.MemStore()
	first := NewBucket("first")
	second := NewBucket("firsts")

	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, first.Put(db, []byte(k), &counter{Name: k}))
	}
	require.NoError(t, second.Put(db, []byte("z"), &counter{Name: "z"}))

	var keys []string
	err := first.Visit(db, func(key, value []byte) error {
		var c counter
		if err := Unmarshal(value, &c); err != nil {
			return err
		}
		assert.Equal(t, string(key), c.Name)
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	n, err := second.Count(db)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSequence(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("members", "id")

	latest, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), latest)

	first, err := seq.NextVal(db)
	require.NoError(t, err)
	second, err := seq.NextVal(db)
	require.NoError(t, err)
	assert.Equal(t, EncodeSequence(1), first)
	assert.Equal(t, EncodeSequence(2), second)

	latest, err = seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), latest)
}

func TestPrefixEnd(t *testing.T) {
	cases := map[string]struct {
		prefix []byte
		want   []byte
	}{
		"simple":         {prefix: []byte("abc:"), want: []byte("abc;")},
		"carry":          {prefix: []byte{0x01, 0xff}, want: []byte{0x02}},
		"all bits are 1": {prefix: []byte{0xff, 0xff}, want: nil},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.want, prefixEnd(tc.prefix))
		})
	}
}
