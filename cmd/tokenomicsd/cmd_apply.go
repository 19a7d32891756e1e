package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	flag "github.com/spf13/pflag"
)

// txResult is written for every applied transaction.
type txResult struct {
	Line   int           `json:"line"`
	OK     bool          `json:"ok"`
	Error  string        `json:"error,omitempty"`
	Code   uint32        `json:"code,omitempty"`
	Log    string        `json:"log,omitempty"`
	Events []eventOutput `json:"events,omitempty"`
}

type eventOutput struct {
	Kind  string           `json:"kind"`
	Event tokenomics.Event `json:"event"`
}

func cmdApply(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("apply", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprintln(os.Stderr, `
Read newline delimited JSON transactions from the input and deliver them
one by one. A result line is written for every transaction. A failed
transaction leaves no trace in the state and does not stop the processing
unless --strict is set.

Transaction format:
  {"signer": "0x...", "path": "distribution/burn", "msg": {}}
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = fl.String("home", ".tokenomicsd", "Home directory.")
		strictFl = fl.Bool("strict", false, "Stop on the first failed transaction.")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	n, err := openNode(*homeFl, nil)
	if err != nil {
		return err
	}
	defer n.Close()

	enc := json.NewEncoder(output)
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	var line, failed int
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		res, deliverErr := n.app.DeliverRaw(context.Background(), raw)
		out := txResult{Line: line, OK: deliverErr == nil}
		if deliverErr != nil {
			failed++
			out.Error = deliverErr.Error()
			out.Code = errors.Code(deliverErr)
		} else {
			out.Log = res.Log
			for _, e := range res.Events {
				out.Events = append(out.Events, eventOutput{Kind: e.EventKind(), Event: e})
			}
		}
		if err := enc.Encode(out); err != nil {
			return errors.Wrapf(errors.ErrInput, "write result: %s", err)
		}
		if deliverErr != nil && *strictFl {
			return errors.Wrapf(deliverErr, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(errors.ErrInput, "read input: %s", err)
	}
	n.logger.Info("applied transactions", "total", line, "failed", failed)
	return nil
}
