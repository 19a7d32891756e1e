package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iov-one/tokenomics/errors"
	flag "github.com/spf13/pflag"
)

func cmdQuery(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("query", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprintln(os.Stderr, `
Query the application state and print the result as JSON.

  query [flags] <path> [<argument>]

Paths: audit, allowlist, balance, distributor, member, timelock, vault.
		`)
		fl.PrintDefaults()
	}
	homeFl := fl.String("home", ".tokenomicsd", "Home directory.")
	if err := fl.Parse(args); err != nil {
		return err
	}
	if fl.NArg() < 1 || fl.NArg() > 2 {
		return errors.Wrap(errors.ErrInput, "usage: query <path> [<argument>]")
	}

	n, err := openNode(*homeFl, nil)
	if err != nil {
		return err
	}
	defer n.Close()

	res, err := n.app.Query(fl.Arg(0), fl.Arg(1))
	if err != nil {
		if errors.ErrNotFound.Is(err) {
			return errors.Wrapf(err, "available paths: %s", strings.Join(n.app.QueryPaths(), ", "))
		}
		return err
	}
	raw, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "serialize result: %s", err)
	}
	_, err = fmt.Fprintln(output, string(raw))
	return err
}
