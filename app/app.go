package app

import (
	"context"
	"sync"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x"
	"github.com/jonboulle/clockwork"
	"github.com/tendermint/tendermint/libs/log"
)

// Observer is notified about every delivered transaction, after its
// outcome is final. Result is nil when err is not.
type Observer interface {
	ObserveTx(path string, res *tokenomics.DeliverResult, err error)
}

// Config holds everything needed to build an Application.
type Config struct {
	// Store is where the state lives. The application commits it after
	// every successful transaction.
	Store tokenomics.CommitKVStore
	// Handler processes transactions, usually a decorated Router.
	Handler tokenomics.Handler
	// Initializer loads the genesis state.
	Initializer tokenomics.Initializer
	// Queries is optional.
	Queries QueryRouter
	// Clock provides the block time of every transaction. Defaults to the
	// real clock.
	Clock clockwork.Clock
	// Logger defaults to a no-op logger.
	Logger log.Logger
	// Observers are optional.
	Observers []Observer
}

// Application executes transactions one at a time. Each transaction sees
// the state left by the previous one and either commits entirely or leaves
// no trace, so of several requests competing for the same value only those
// that still fit succeed.
type Application struct {
	mu sync.Mutex

	store     tokenomics.CommitKVStore
	handler   tokenomics.Handler
	init      tokenomics.Initializer
	queries   QueryRouter
	clock     clockwork.Clock
	logger    log.Logger
	observers []Observer
	audit     AuditLog

	chainID string
}

// NewApplication returns an application serving given configuration.
func NewApplication(conf Config) (*Application, error) {
	if conf.Store == nil {
		return nil, errors.Wrap(errors.ErrHuman, "store is required")
	}
	if conf.Handler == nil {
		return nil, errors.Wrap(errors.ErrHuman, "handler is required")
	}
	if conf.Clock == nil {
		conf.Clock = clockwork.NewRealClock()
	}
	if conf.Logger == nil {
		conf.Logger = log.NewNopLogger()
	}
	if conf.Queries.routes == nil {
		conf.Queries = NewQueryRouter()
	}
	chainID, err := loadChainID(conf.Store)
	if err != nil {
		return nil, err
	}
	a := &Application{
		store:     conf.Store,
		handler:   conf.Handler,
		init:      conf.Initializer,
		queries:   conf.Queries,
		clock:     conf.Clock,
		logger:    conf.Logger,
		observers: conf.Observers,
		audit:     NewAuditLog(),
		chainID:   chainID,
	}
	a.registerQueries()
	return a, nil
}

func (a *Application) registerQueries() {
	if a.queries.Handler("audit") != nil {
		return
	}
	a.queries.Register("audit", func(db tokenomics.ReadOnlyKVStore, arg string) (interface{}, error) {
		after, limit, err := parseAuditArg(arg)
		if err != nil {
			return nil, err
		}
		return a.audit.List(db, after, limit)
	})
}

// ChainID returns the chain id set by InitChain or an empty string.
func (a *Application) ChainID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.chainID
}

// InitChain loads the genesis state. It can be done only once for a store.
func (a *Application) InitChain(gen Genesis) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.CacheWrap()
	if err := saveChainID(cache, gen.ChainID); err != nil {
		cache.Discard()
		return err
	}
	if a.init != nil {
		if err := a.init.FromGenesis(gen.AppState, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "genesis")
		}
	}
	if err := cache.Write(); err != nil {
		cache.Discard()
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := a.store.Commit(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	a.chainID = gen.ChainID
	a.logger.Info("chain initialized", "chain_id", gen.ChainID)
	return nil
}

// context builds the execution context of a single transaction.
func (a *Application) context(ctx context.Context, call string, tx *Tx) context.Context {
	ctx = tokenomics.WithBlockTime(ctx, a.clock.Now())
	ctx = tokenomics.WithLogger(ctx, a.logger)
	ctx = tokenomics.WithLogInfo(ctx, "call", call, "path", tokenomics.GetPath(tx))
	if len(tx.Signer) != 0 {
		ctx = x.WithSigners(ctx, tx.Signer)
	}
	return ctx
}

// Check validates the transaction against the current state without
// modifying it.
func (a *Application) Check(ctx context.Context, tx *Tx) (*tokenomics.CheckResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.store.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(a.context(ctx, "check_tx", tx), cache, tx)
}

// Deliver executes the transaction. On success all changes are committed
// and all emitted events are appended to the audit log. On failure the
// state is left untouched.
func (a *Application) Deliver(ctx context.Context, tx *Tx) (*tokenomics.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	res, err := a.deliver(ctx, tx)
	for _, o := range a.observers {
		o.ObserveTx(tokenomics.GetPath(tx), res, err)
	}
	return res, err
}

func (a *Application) deliver(ctx context.Context, tx *Tx) (*tokenomics.DeliverResult, error) {
	ctx = a.context(ctx, "deliver_tx", tx)
	now, _ := tokenomics.BlockTime(ctx)

	cache := a.store.CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := a.audit.Append(cache, tokenomics.AsUnixTime(now), tx, tx.Signer, res.Events); err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		cache.Discard()
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := a.store.Commit(); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return res, nil
}

// DeliverRaw decodes a JSON transaction and delivers it.
func (a *Application) DeliverRaw(ctx context.Context, raw []byte) (*tokenomics.DeliverResult, error) {
	tx, err := DecodeTx(raw)
	if err != nil {
		return nil, err
	}
	return a.Deliver(ctx, tx)
}

// Query runs the query handler registered under path.
func (a *Application) Query(path, arg string) (interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	h := a.queries.Handler(path)
	if h == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return h(a.store, arg)
}

// QueryPaths lists all available query paths.
func (a *Application) QueryPaths() []string {
	return a.queries.Paths()
}

// Close releases the store.
func (a *Application) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Close()
}
