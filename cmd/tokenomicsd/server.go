package main

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iov-one/tokenomics/app"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

const maxTxSize = 1 << 20

// server exposes the application over HTTP.
type server struct {
	router chi.Router
	app    *app.Application
	logger log.Logger
}

// newServer returns the HTTP API of given application. Requests are
// recorded by the collector and metrics are served from g.
func newServer(a *app.Application, logger log.Logger, collector *metrics.Collector, g prometheus.Gatherer) *server {
	s := &server{
		router: chi.NewRouter(),
		app:    a,
		logger: logger,
	}
	s.router.Use(middleware.Recoverer)
	s.router.Use(collector.Middleware)

	s.router.Post("/tx", s.handleTx)
	s.router.Get("/query", s.handleQueryPaths)
	s.router.Get("/query/{path}", s.handleQuery)
	s.router.Get("/chain", s.handleChain)
	s.router.Method(http.MethodGet, "/metrics", metrics.Handler(g))
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleTx delivers a single JSON encoded transaction.
func (s *server) handleTx(w http.ResponseWriter, r *http.Request) {
	raw, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxTxSize))
	if err != nil {
		s.writeError(w, errors.Wrapf(errors.ErrInput, "read body: %s", err))
		return
	}
	res, err := s.app.DeliverRaw(r.Context(), raw)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := txResult{OK: true, Log: res.Log}
	for _, e := range res.Events {
		out.Events = append(out.Events, eventOutput{Kind: e.EventKind(), Event: e})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *server) handleQuery(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.Query(chi.URLParam(r, "path"), r.URL.Query().Get("arg"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handleQueryPaths(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.app.QueryPaths())
}

func (s *server) handleChain(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"chain_id": s.app.ChainID()})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("cannot write response", "err", err)
	}
}

// writeError responds with the error. Details of internal failures are not
// revealed to the client.
func (s *server) writeError(w http.ResponseWriter, err error) {
	status, code := httpStatus(err), errors.Code(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, txResult{Error: errors.Redact(err, false).Error(), Code: code})
}

// httpStatus maps an error to the HTTP status code. Rejected operations of
// the domain are reported as unprocessable, malformed requests as bad.
func httpStatus(err error) int {
	switch code := errors.Code(err); {
	case errors.ErrNotFound.Is(err):
		return http.StatusNotFound
	case errors.ErrUnauthorized.Is(err):
		return http.StatusForbidden
	case errors.ErrDatabase.Is(err), errors.ErrPanic.Is(err), errors.ErrHuman.Is(err):
		return http.StatusInternalServerError
	case code >= errors.ErrInsufficientFunds.Code() && code < errors.ErrPanic.Code():
		return http.StatusUnprocessableEntity
	case code > 1:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serve runs the HTTP server until the context is cancelled.
func (s *server) serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(errors.ErrInput, "listen: %s", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
