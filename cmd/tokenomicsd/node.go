package main

import (
	"github.com/iov-one/tokenomics/app"
	tokenomicsd "github.com/iov-one/tokenomics/cmd/tokenomicsd/app"
	"github.com/iov-one/tokenomics/errors"
	"github.com/jonboulle/clockwork"
	"github.com/tendermint/tendermint/libs/log"
)

// node is an opened home directory.
type node struct {
	conf   Config
	logger log.Logger
	app    *app.Application
}

// openNode loads the configuration from home and opens the application
// on its database. The genesis file is loaded if the chain was not
// initialized yet.
func openNode(home string, clock clockwork.Clock, observers ...app.Observer) (*node, error) {
	conf, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		return nil, err
	}
	a, _, err := tokenomicsd.Application(tokenomicsd.Options{
		DBPath:         conf.path(home, conf.DataDir),
		GovernanceMode: conf.GovernanceMode,
		Clock:          clock,
		Logger:         logger,
		Observers:      observers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open application")
	}
	n := &node{conf: conf, logger: logger, app: a}

	if a.ChainID() == "" {
		gen, err := app.LoadGenesis(conf.path(home, conf.Genesis))
		if err != nil {
			a.Close()
			return nil, err
		}
		if err := a.InitChain(gen); err != nil {
			a.Close()
			return nil, err
		}
	}
	return n, nil
}

func (n *node) Close() error {
	return n.app.Close()
}
