package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/tokenomics/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	flag "github.com/spf13/pflag"
)

func cmdServe(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("serve", flag.ContinueOnError)
	fl.Usage = func() {
		fmt.Fprintln(os.Stderr, `
Serve the application over HTTP until interrupted.

  POST /tx                 deliver a JSON transaction
  GET  /query              list query paths
  GET  /query/{path}?arg=  run a query
  GET  /chain              chain information
  GET  /metrics            prometheus metrics
		`)
		fl.PrintDefaults()
	}
	var (
		homeFl   = fl.String("home", ".tokenomicsd", "Home directory.")
		listenFl = fl.String("listen", "", "Listen address. Overrides the configuration.")
	)
	if err := fl.Parse(args); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	n, err := openNode(*homeFl, nil, collector)
	if err != nil {
		return err
	}
	defer n.Close()

	addr := n.conf.ListenAddress
	if *listenFl != "" {
		addr = *listenFl
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newServer(n.app, n.logger, collector, reg).serve(ctx, addr)
}
