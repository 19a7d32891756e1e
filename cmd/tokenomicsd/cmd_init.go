package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	tokenomics "github.com/iov-one/tokenomics"
	tokenomicsd "github.com/iov-one/tokenomics/cmd/tokenomicsd/app"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x/distribution"
	flag "github.com/spf13/pflag"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("init", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprintln(os.Stderr, `
Create a home directory with a configuration and a genesis file, then
initialize the database from that genesis. The owner controls the reward
pool and the allowlist. The reserve is administered by the reward pool.
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl       = fl.String("home", ".tokenomicsd", "Home directory.")
		chainIDFl    = fl.String("chain-id", "tokenomics-dev", "Chain ID.")
		ownerFl      = fl.String("owner", "", "Owner address, required.")
		foundationFl = fl.String("foundation", "", "Foundation address. Defaults to the owner.")
		govFl        = fl.String("governance", distribution.ModeDirect, `Governance mode, "direct" or "timelocked".`)
		logLevelFl   = fl.String("log-level", "info", "Log level.")
		sizeFl       = fl.Uint32("allowlist-size", 100, "Allowlist capacity.")
		supply       = coin.Whole(1000000)
		pool         coin.Amount
		reserve      coin.Amount
	)
	fl.Var(&supply, "supply", "Amount issued to the owner.")
	fl.Var(&pool, "pool", "Amount issued to the reward pool.")
	fl.Var(&reserve, "reserve", "Amount issued to the reserve.")
	if err := fl.Parse(args); err != nil {
		return err
	}

	owner, err := tokenomics.ParseAddress(*ownerFl)
	if err != nil {
		return errors.Wrap(err, "owner")
	}
	var foundation tokenomics.Address
	if *foundationFl != "" {
		if foundation, err = tokenomics.ParseAddress(*foundationFl); err != nil {
			return errors.Wrap(err, "foundation")
		}
	}

	conf := DefaultConfig()
	conf.GovernanceMode = *govFl
	conf.LogLevel = *logLevelFl
	if err := WriteConfig(*homeFl, conf); err != nil {
		return err
	}

	gen, err := tokenomicsd.GenInitOptions(tokenomicsd.GenesisParams{
		ChainID:       *chainIDFl,
		Owner:         owner,
		Foundation:    foundation,
		Supply:        supply,
		Pool:          pool,
		Reserve:       reserve,
		AllowListSize: *sizeFl,
	})
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(gen, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "serialize genesis: %s", err)
	}
	genPath := conf.path(*homeFl, conf.Genesis)
	if err := ioutil.WriteFile(genPath, raw, 0o644); err != nil {
		return errors.Wrapf(errors.ErrInput, "write genesis: %s", err)
	}

	n, err := openNode(*homeFl, nil)
	if err != nil {
		return err
	}
	defer n.Close()

	abs, _ := filepath.Abs(*homeFl)
	fmt.Fprintf(output, "initialized chain %s in %s\n", n.app.ChainID(), abs)
	return nil
}
