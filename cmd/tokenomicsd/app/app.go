/*
Package app links together all the various components
to construct the tokenomicsd application.
*/
package app

import (
	"path/filepath"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/app"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/store"
	"github.com/iov-one/tokenomics/x"
	"github.com/iov-one/tokenomics/x/allowlist"
	"github.com/iov-one/tokenomics/x/cash"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/timelock"
	"github.com/iov-one/tokenomics/x/utils"
	"github.com/iov-one/tokenomics/x/vault"
	"github.com/jonboulle/clockwork"
	"github.com/tendermint/tendermint/libs/log"
)

// Modules holds the controllers of all extensions, sharing a single
// authenticator and clock.
type Modules struct {
	Cash         cash.BaseController
	Vault        *vault.Controller
	Timelock     *timelock.Timelock
	Distribution *distribution.Controller
	Governance   distribution.Governance
	AllowList    *allowlist.Registry
}

// NewModules builds all controllers. The governance mode selects how the
// distributor parameters are changed, see distribution.NewGovernance.
func NewModules(auth x.Authenticator, clock clockwork.Clock, governanceMode string) (*Modules, error) {
	bank := cash.NewController()
	reserve := vault.NewController(auth, bank)
	tl := timelock.New(clock)
	distr := distribution.NewController(auth, bank, reserve)
	gov, err := distribution.NewGovernance(governanceMode, distr, tl)
	if err != nil {
		return nil, err
	}
	return &Modules{
		Cash:         bank,
		Vault:        reserve,
		Timelock:     tl,
		Distribution: distr,
		Governance:   gov,
		AllowList:    allowlist.NewRegistry(auth),
	}, nil
}

// Authenticator returns the signer based authentication. The signer of a
// transaction is set by the application from the transaction envelope.
func Authenticator() x.Authenticator {
	return x.SignerAuth{}
}

// Chain returns a chain of decorators, to handle logging, recovery,
// tagging, event collection and isolation.
func Chain(authFn x.Authenticator) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(authFn),
		// events of a failed transaction are dropped
		utils.NewEventCollector(),
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router with the handlers of all extensions.
func Router(authFn x.Authenticator, m *Modules) *app.Router {
	r := app.NewRouter()
	cash.RegisterRoutes(r, authFn, m.Cash)
	vault.RegisterRoutes(r, m.Vault)
	distribution.RegisterRoutes(r, m.Distribution, m.Governance)
	allowlist.RegisterRoutes(r, m.AllowList)
	return r
}

// Stack wires up the router with the decorator chain.
func Stack(authFn x.Authenticator, m *Modules) tokenomics.Handler {
	return Chain(authFn).WithHandler(Router(authFn, m))
}

// Initializers returns the genesis loaders of all extensions, in the order
// they must run.
func Initializers() tokenomics.Initializer {
	return tokenomics.ChainInitializers{
		cash.Initializer{},
		vault.Initializer{},
		timelock.Initializer{},
		distribution.Initializer{},
		allowlist.Initializer{},
	}
}

// Options configures Application.
type Options struct {
	// DBPath is the leveldb directory. Empty means an in-memory store.
	DBPath         string
	GovernanceMode string
	Clock          clockwork.Clock
	Logger         log.Logger
	Observers      []app.Observer
}

// Application constructs the application with all extensions.
func Application(opts Options) (*app.Application, *Modules, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	authFn := Authenticator()
	m, err := NewModules(authFn, opts.Clock, opts.GovernanceMode)
	if err != nil {
		return nil, nil, err
	}
	kv, err := CommitKVStore(opts.DBPath)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.NewApplication(app.Config{
		Store:       kv,
		Handler:     Stack(authFn, m),
		Initializer: Initializers(),
		Queries:     QueryRouter(m),
		Clock:       opts.Clock,
		Logger:      opts.Logger,
		Observers:   opts.Observers,
	})
	if err != nil {
		kv.Close()
		return nil, nil, err
	}
	return a, m, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (tokenomics.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		kv, err := store.NewMemCommitStore()
		if err != nil {
			return nil, err
		}
		return kv, nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database path: %s", dbPath)
	}
	db, err := store.OpenLevelDB(path)
	if err != nil {
		return nil, err
	}
	return store.NewCommitStore(db), nil
}
