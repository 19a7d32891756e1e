package vault

import (
	"context"
	"encoding/json"
	"testing"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/iov-one/tokenomics/tokentest"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/cash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease(t *testing.T) {
	admin := tokentest.NewAddress()
	stranger := tokentest.NewAddress()
	recipient := tokentest.NewAddress()

	cases := map[string]struct {
		signer        tokenomics.Address
		amount        coin.Amount
		wantErr       *errors.Error
		wantReserve   coin.Amount
		wantRecipient coin.Amount
	}{
		"admin releases part": {
			signer:        admin,
			amount:        coin.MustParseAmount("2.5"),
			wantReserve:   coin.MustParseAmount("7.5"),
			wantRecipient: coin.MustParseAmount("2.5"),
		},
		"admin releases everything": {
			signer:        admin,
			amount:        coin.Whole(10),
			wantReserve:   coin.Amount{},
			wantRecipient: coin.Whole(10),
		},
		"more than held": {
			signer:      admin,
			amount:      coin.Whole(11),
			wantErr:     errors.ErrInsufficientFunds,
			wantReserve: coin.Whole(10),
		},
		"not the admin": {
			signer:      stranger,
			amount:      coin.Whole(1),
			wantErr:     errors.ErrUnauthorized,
			wantReserve: coin.Whole(10),
		},
		"no signer": {
			amount:      coin.Whole(1),
			wantErr:     errors.ErrUnauthorized,
			wantReserve: coin.Whole(10),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bank := cash.NewController()
			ctrl := NewController(x.SignerAuth{}, bank)
			require.NoError(t, ctrl.Init(db, &Vault{Admin: admin}))
			require.NoError(t, bank.IssueCoins(db, Address, coin.Whole(10)))

			var events tokenomics.EventBuffer
			ctx := tokenomics.WithEventSink(context.Background(), &events)
			if tc.signer != nil {
				ctx = x.WithSigners(ctx, tc.signer)
			}

			err := ctrl.Release(ctx, db, recipient, tc.amount)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				assert.Empty(t, events.Events())
			} else {
				require.NoError(t, err)
				require.Len(t, events.Events(), 1)
				ev := events.Events()[0].(*ReleasedEvent)
				assert.Equal(t, recipient, ev.To)
				assert.Equal(t, tc.amount.String(), ev.Amount)
			}

			got, err := ctrl.Balance(db)
			require.NoError(t, err)
			assert.Equal(t, tc.wantReserve.String(), got.String())
			got, err = bank.Balance(db, recipient)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRecipient.String(), got.String())
		})
	}
}

func TestReleaseIsNotDeduplicated(t *testing.T) {
	admin := tokentest.NewAddress()
	recipient := tokentest.NewAddress()
	db := store.MemStore()
	bank := cash.NewController()
	ctrl := NewController(x.SignerAuth{}, bank)
	require.NoError(t, ctrl.Init(db, &Vault{Admin: admin}))
	require.NoError(t, bank.IssueCoins(db, Address, coin.Whole(3)))

	ctx := x.WithSigners(context.Background(), admin)
	for i := 0; i < 3; i++ {
		require.NoError(t, ctrl.Release(ctx, db, recipient, coin.Whole(1)))
	}
	err := ctrl.Release(ctx, db, recipient, coin.Whole(1))
	require.True(t, errors.ErrInsufficientFunds.Is(err))

	got, err := bank.Balance(db, recipient)
	require.NoError(t, err)
	assert.Equal(t, "3", got.String())
}

func TestDeposit(t *testing.T) {
	funder := tokentest.NewAddress()
	db := store.MemStore()
	bank := cash.NewController()
	ctrl := NewController(x.SignerAuth{}, bank)
	require.NoError(t, bank.IssueCoins(db, funder, coin.Whole(5)))

	var events tokenomics.EventBuffer
	ctx := tokenomics.WithEventSink(context.Background(), &events)
	require.NoError(t, ctrl.Deposit(ctx, db, funder, coin.Whole(2)))

	got, err := ctrl.Balance(db)
	require.NoError(t, err)
	assert.Equal(t, "2", got.String())
	require.Len(t, events.Events(), 1)

	err = ctrl.Deposit(ctx, db, funder, coin.Whole(4))
	require.True(t, errors.ErrInsufficientFunds.Is(err))
}

func TestUpdateAdmin(t *testing.T) {
	admin := tokentest.NewAddress()
	next := tokentest.NewAddress()
	db := store.MemStore()
	ctrl := NewController(x.SignerAuth{}, cash.NewController())
	require.NoError(t, ctrl.Init(db, &Vault{Admin: admin}))

	err := ctrl.UpdateAdmin(x.WithSigners(context.Background(), next), db, next)
	require.True(t, errors.ErrUnauthorized.Is(err))

	require.NoError(t, ctrl.UpdateAdmin(x.WithSigners(context.Background(), admin), db, next))
	got, err := ctrl.Admin(db)
	require.NoError(t, err)
	assert.Equal(t, next, got)

	err = ctrl.UpdateAdmin(x.WithSigners(context.Background(), admin), db, admin)
	require.True(t, errors.ErrUnauthorized.Is(err))
}

func TestHandlers(t *testing.T) {
	admin := tokentest.NewAddress()
	recipient := tokentest.NewAddress()

	cases := map[string]struct {
		signer  tokenomics.Address
		msg     tokenomics.Msg
		wantErr *errors.Error
	}{
		"release": {
			signer: admin,
			msg:    &ReleaseMsg{To: recipient, Amount: coin.Whole(1)},
		},
		"release zero": {
			signer:  admin,
			msg:     &ReleaseMsg{To: recipient},
			wantErr: errors.ErrAmount,
		},
		"release by a stranger": {
			signer:  recipient,
			msg:     &ReleaseMsg{To: recipient, Amount: coin.Whole(1)},
			wantErr: errors.ErrUnauthorized,
		},
		"update admin": {
			signer: admin,
			msg:    &UpdateAdminMsg{Admin: recipient},
		},
		"update admin to nobody": {
			signer:  admin,
			msg:     &UpdateAdminMsg{},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			bank := cash.NewController()
			ctrl := NewController(x.SignerAuth{}, bank)
			require.NoError(t, ctrl.Init(db, &Vault{Admin: admin}))
			require.NoError(t, bank.IssueCoins(db, Address, coin.Whole(10)))

			r := newRouter()
			RegisterRoutes(r, ctrl)
			h := r.handlers[tc.msg.Path()]
			require.NotNil(t, h)

			ctx := x.WithSigners(context.Background(), tc.signer)
			tx := &tokentest.Tx{Msg: tc.msg}
			if tc.wantErr == nil {
				_, err := h.Check(ctx, db, tx)
				require.NoError(t, err)
			}
			_, err := h.Deliver(ctx, db, tx)
			if tc.wantErr != nil {
				require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestGenesis(t *testing.T) {
	const genesis = `{"vault": {"admin": "cond:distribution/pool/"}}`
	var opts tokenomics.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	require.NoError(t, Initializer{}.FromGenesis(opts, db))

	ctrl := NewController(x.SignerAuth{}, cash.NewController())
	admin, err := ctrl.Admin(db)
	require.NoError(t, err)
	assert.Equal(t, tokenomics.NewCondition("distribution", "pool", nil).Address(), admin)
}

type router struct {
	handlers map[string]tokenomics.Handler
}

func newRouter() *router {
	return &router{handlers: make(map[string]tokenomics.Handler)}
}

func (r *router) Handle(path string, h tokenomics.Handler) {
	r.handlers[path] = h
}
