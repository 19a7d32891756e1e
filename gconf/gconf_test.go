package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConf struct {
	Delay int64 `protobuf:"varint,1,opt,name=delay,proto3" json:"delay,omitempty"`
}

func (m *testConf) Reset()         { *m = testConf{} }
func (m *testConf) String() string { return proto.CompactTextString(m) }
func (*testConf) ProtoMessage()    {}

func (m *testConf) Validate() error {
	if m.Delay < 0 {
		return errors.Wrap(errors.ErrModel, "negative delay")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	var got testConf
	err := Load(db, "timelock", &got)
	assert.True(t, errors.ErrNotFound.Is(err))

	require.NoError(t, Save(db, "timelock", &testConf{Delay: 172800}))
	require.NoError(t, Load(db, "timelock", &got))
	assert.Equal(t, int64(172800), got.Delay)

	err = Save(db, "timelock", &testConf{Delay: -1})
	assert.True(t, errors.ErrModel.Is(err))
}

func TestInitConfig(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
		want    int64
	}{
		"configuration is loaded": {
			genesis: `{"conf": {"timelock": {"delay": 60}}}`,
			want:    60,
		},
		"missing configuration": {
			genesis: `{"conf": {"other": {"delay": 60}}}`,
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			genesis: `{"conf": {"timelock": {"delay": -5}}}`,
			wantErr: errors.ErrModel,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts tokenomics.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))

			db := store.MemStore()
			err := InitConfig(db, opts, "timelock", &testConf{})
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)

			var got testConf
			require.NoError(t, Load(db, "timelock", &got))
			assert.Equal(t, tc.want, got.Delay)
		})
	}
}
