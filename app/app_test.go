package app

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/utils"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingedEvent struct {
	Note string `protobuf:"bytes,1,opt,name=note,proto3" json:"note"`
}

func (m *pingedEvent) Reset()         { *m = pingedEvent{} }
func (m *pingedEvent) String() string { return proto.CompactTextString(m) }
func (*pingedEvent) ProtoMessage()    {}
func (*pingedEvent) EventKind() string {
	return "test/pinged"
}

// pingHandler stores the note under the signer address. A note "fail" is
// stored too, but the handler then fails.
type pingHandler struct{}

func (pingHandler) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.CheckResult, error) {
	var msg pingMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &tokenomics.CheckResult{}, nil
}

func (pingHandler) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx) (*tokenomics.DeliverResult, error) {
	var msg pingMsg
	if err := tokenomics.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	signer := x.MainSigner(ctx, x.SignerAuth{})
	if err := db.Set(signer, []byte(msg.Note)); err != nil {
		return nil, err
	}
	tokenomics.Emit(ctx, &pingedEvent{Note: msg.Note})
	if msg.Note == "fail" {
		return nil, errors.Wrap(errors.ErrState, "asked to fail")
	}
	return &tokenomics.DeliverResult{}, nil
}

type genesisNote struct{}

func (genesisNote) FromGenesis(opts tokenomics.Options, kv tokenomics.KVStore) error {
	var note string
	if err := opts.ReadOptions("note", &note); err != nil {
		return err
	}
	return kv.Set([]byte("genesis"), []byte(note))
}

type countingObserver struct {
	mu     sync.Mutex
	ok     int
	failed int
}

func (o *countingObserver) ObserveTx(path string, res *tokenomics.DeliverResult, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.failed++
	} else {
		o.ok++
	}
}

func newTestApp(t *testing.T, clock clockwork.Clock, obs Observer) *Application {
	t.Helper()
	db, err := store.NewMemCommitStore()
	require.NoError(t, err)
	return newTestAppOn(t, db, clock, obs)
}

func newTestAppOn(t *testing.T, db tokenomics.CommitKVStore, clock clockwork.Clock, obs Observer) *Application {
	t.Helper()
	r := NewRouter()
	r.Handle(pingMsg{}.Path(), pingHandler{})
	stack := ChainDecorators(
		utils.NewRecovery(),
		utils.NewEventCollector(),
	).WithHandler(r)

	queries := NewQueryRouter()
	queries.Register("note", func(db tokenomics.ReadOnlyKVStore, arg string) (interface{}, error) {
		addr, err := tokenomics.ParseAddress(arg)
		if err != nil {
			return nil, err
		}
		raw, err := db.Get(addr)
		return string(raw), err
	})

	a, err := NewApplication(Config{
		Store:       db,
		Handler:     stack,
		Initializer: genesisNote{},
		Queries:     queries,
		Clock:       clock,
		Observers:   []Observer{obs},
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestApplication(t *testing.T) {
	alice := tokenomics.NewCondition("test", "account", []byte{1}).Address()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	obs := &countingObserver{}
	a := newTestApp(t, clock, obs)
	ctx := context.Background()

	require.NoError(t, a.InitChain(Genesis{
		ChainID:  "test-chain",
		AppState: tokenomics.Options{"note": json.RawMessage(`"hello"`)},
	}))
	assert.Equal(t, "test-chain", a.ChainID())
	err := a.InitChain(Genesis{ChainID: "test-chain"})
	assert.True(t, errors.ErrState.Is(err), "genesis can be loaded only once: %+v", err)

	tx, err := NewTx(alice, &pingMsg{Note: "first"})
	require.NoError(t, err)
	_, err = a.Check(ctx, tx)
	require.NoError(t, err)
	got, err := a.Query("note", alice.String())
	require.NoError(t, err)
	assert.Equal(t, "", got, "check must not modify the state")

	res, err := a.Deliver(ctx, tx)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	got, err = a.Query("note", alice.String())
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	// A failed transaction leaves neither state nor audit records.
	_, err = a.DeliverRaw(ctx, []byte(`{"signer": "`+alice.String()+`", "path": "test/ping", "msg": {"note": "fail"}}`))
	assert.True(t, errors.ErrState.Is(err), "%+v", err)
	got, err = a.Query("note", alice.String())
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	_, err = a.DeliverRaw(ctx, []byte(`{"path": "test/unknown", "msg": {}}`))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	clock.Advance(time.Hour)
	tx, err = NewTx(alice, &pingMsg{Note: "second"})
	require.NoError(t, err)
	_, err = a.Deliver(ctx, tx)
	require.NoError(t, err)

	records, err := a.Query("audit", "")
	require.NoError(t, err)
	list := records.([]*AuditRecord)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(1), list[0].Seq)
	assert.Equal(t, "test/pinged", list[0].Kind)
	assert.Equal(t, "test/ping", list[0].Path)
	assert.Equal(t, alice, list[0].Signer)
	assert.Equal(t, tokenomics.AsUnixTime(clock.Now().Add(-time.Hour)), list[0].Time)
	assert.JSONEq(t, `{"note": "first"}`, string(list[0].Payload))
	assert.Equal(t, tokenomics.AsUnixTime(clock.Now()), list[1].Time)

	records, err = a.Query("audit", "1/10")
	require.NoError(t, err)
	require.Len(t, records.([]*AuditRecord), 1)

	_, err = a.Query("unknown", "")
	assert.True(t, errors.ErrNotFound.Is(err))

	assert.Equal(t, 2, obs.ok)
	assert.Equal(t, 2, obs.failed)
}

func TestApplicationSerializesDelivery(t *testing.T) {
	clock := clockwork.NewFakeClock()
	obs := &countingObserver{}
	a := newTestApp(t, clock, obs)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			signer := tokenomics.NewCondition("test", "account", []byte{byte(i)}).Address()
			tx, err := NewTx(signer, &pingMsg{Note: "ping"})
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := a.Deliver(context.Background(), tx); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	records, err := a.Query("audit", "")
	require.NoError(t, err)
	list := records.([]*AuditRecord)
	require.Len(t, list, n)
	for i, r := range list {
		assert.Equal(t, uint64(i+1), r.Seq)
	}
	assert.Equal(t, n, obs.ok)
}

// brokenStore fails every cache write once failWrites is set and counts
// the discarded cache wraps.
type brokenStore struct {
	tokenomics.CommitKVStore
	failWrites bool
	discarded  int
}

func (s *brokenStore) CacheWrap() tokenomics.KVCacheWrap {
	return &brokenCache{KVCacheWrap: s.CommitKVStore.CacheWrap(), store: s}
}

type brokenCache struct {
	tokenomics.KVCacheWrap
	store *brokenStore
}

func (c *brokenCache) Write() error {
	if c.store.failWrites {
		return errors.Wrap(errors.ErrDatabase, "disk full")
	}
	return c.KVCacheWrap.Write()
}

func (c *brokenCache) Discard() {
	c.store.discarded++
	c.KVCacheWrap.Discard()
}

func TestDeliverDiscardsOnWriteFailure(t *testing.T) {
	alice := tokenomics.NewCondition("test", "account", []byte{1}).Address()
	mem, err := store.NewMemCommitStore()
	require.NoError(t, err)
	db := &brokenStore{CommitKVStore: mem}
	obs := &countingObserver{}
	a := newTestAppOn(t, db, clockwork.NewFakeClock(), obs)
	require.NoError(t, a.InitChain(Genesis{ChainID: "test-chain"}))

	db.failWrites = true
	db.discarded = 0
	tx, err := NewTx(alice, &pingMsg{Note: "lost"})
	require.NoError(t, err)
	_, err = a.Deliver(context.Background(), tx)
	assert.True(t, errors.ErrDatabase.Is(err), "%+v", err)
	assert.Equal(t, 1, db.discarded)
	assert.Equal(t, 1, obs.failed)

	db.failWrites = false
	got, err := a.Query("note", alice.String())
	require.NoError(t, err)
	assert.Equal(t, "", got)
	records, err := a.Query("audit", "")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAuditRecordJSON(t *testing.T) {
	rec := &AuditRecord{
		Seq:     3,
		Time:    tokenomics.UnixTime(100),
		Path:    "vault/release",
		Kind:    "vault/released",
		Payload: []byte(`{"amount": "1"}`),
	}
	raw, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"seq": 3,
		"time": 100,
		"path": "vault/release",
		"kind": "vault/released",
		"event": {"amount": "1"}
	}`, string(raw))
}

func TestParseAuditArg(t *testing.T) {
	cases := map[string]struct {
		arg       string
		wantAfter uint64
		wantLimit int
		wantErr   *errors.Error
	}{
		"empty":        {arg: ""},
		"offset":       {arg: "5", wantAfter: 5},
		"with limit":   {arg: "5/2", wantAfter: 5, wantLimit: 2},
		"bad offset":   {arg: "x", wantErr: errors.ErrInput},
		"bad limit":    {arg: "1/x", wantErr: errors.ErrInput},
		"negative cap": {arg: "1/-1", wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			after, limit, err := parseAuditArg(tc.arg)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantAfter, after)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}
