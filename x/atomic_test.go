package x

import (
	"context"
	"testing"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markEvent struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name"`
}

func (m *markEvent) Reset()          { *m = markEvent{} }
func (m *markEvent) String() string  { return m.Name }
func (*markEvent) ProtoMessage()     {}
func (*markEvent) EventKind() string { return "test/mark" }

func TestAtomic(t *testing.T) {
	cases := map[string]struct {
		fnErr      error
		wantStored bool
		wantEvents int
	}{
		"success keeps changes and events": {
			wantStored: true,
			wantEvents: 1,
		},
		"failure drops changes and events": {
			fnErr: errors.ErrInsufficientFunds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			var events tokenomics.EventBuffer
			ctx := tokenomics.WithEventSink(context.Background(), &events)

			err := Atomic(ctx, db, func(ctx tokenomics.Context, db tokenomics.KVStore) error {
				if err := db.Set([]byte("key"), []byte("value")); err != nil {
					return err
				}
				tokenomics.Emit(ctx, &markEvent{Name: "set"})
				return tc.fnErr
			})
			if tc.fnErr != nil {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			ok, err := db.Has([]byte("key"))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStored, ok)
			assert.Len(t, events.Events(), tc.wantEvents)
		})
	}
}
