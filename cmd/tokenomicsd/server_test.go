package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/iov-one/tokenomics/app"
	tokenomicsd "github.com/iov-one/tokenomics/cmd/tokenomicsd/app"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/metrics"
	"github.com/iov-one/tokenomics/tokentest"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestServer(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	a, _, err := tokenomicsd.Application(tokenomicsd.Options{
		Observers: []app.Observer{collector},
	})
	require.NoError(t, err)
	defer a.Close()

	owner := tokentest.NewAddress()
	gen, err := tokenomicsd.GenInitOptions(tokenomicsd.GenesisParams{
		ChainID: "test-chain",
		Owner:   owner,
		Pool:    coin.Whole(10),
		Reserve: coin.Whole(10),
	})
	require.NoError(t, err)
	require.NoError(t, a.InitChain(gen))

	srv := httptest.NewServer(newServer(a, log.NewNopLogger(), collector, reg))
	defer srv.Close()

	cases := map[string]struct {
		Method     string
		Path       string
		Body       string
		WantStatus int
		WantBody   string
	}{
		"burn": {
			Method:     http.MethodPost,
			Path:       "/tx",
			Body:       fmt.Sprintf(`{"signer": %q, "path": "distribution/burn", "msg": {}}`, owner),
			WantStatus: http.StatusOK,
			WantBody:   "distribution/distributed",
		},
		"unauthorized claim": {
			Method:     http.MethodPost,
			Path:       "/tx",
			Body:       fmt.Sprintf(`{"signer": %q, "path": "distribution/claim", "msg": {"to": %q, "amount": "1"}}`, tokentest.NewAddress(), owner),
			WantStatus: http.StatusForbidden,
		},
		"overdraw": {
			Method:     http.MethodPost,
			Path:       "/tx",
			Body:       fmt.Sprintf(`{"signer": %q, "path": "distribution/claim", "msg": {"to": %q, "amount": "1000"}}`, owner, owner),
			WantStatus: http.StatusUnprocessableEntity,
		},
		"malformed transaction": {
			Method:     http.MethodPost,
			Path:       "/tx",
			Body:       `{`,
			WantStatus: http.StatusBadRequest,
		},
		"query": {
			Method:     http.MethodGet,
			Path:       "/query/allowlist",
			WantStatus: http.StatusOK,
			WantBody:   `"max_size":0`,
		},
		"unknown query": {
			Method:     http.MethodGet,
			Path:       "/query/nothing",
			WantStatus: http.StatusNotFound,
		},
		"chain": {
			Method:     http.MethodGet,
			Path:       "/chain",
			WantStatus: http.StatusOK,
			WantBody:   "test-chain",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			req, err := http.NewRequest(tc.Method, srv.URL+tc.Path, strings.NewReader(tc.Body))
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			var body json.RawMessage
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.WantStatus, resp.StatusCode, string(body))
			if tc.WantBody != "" {
				assert.Contains(t, string(body), tc.WantBody)
			}
		})
	}

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[string]struct {
		Err  error
		Want int
	}{
		"not found":          {Err: errors.ErrNotFound, Want: http.StatusNotFound},
		"unauthorized":       {Err: errors.Wrap(errors.ErrUnauthorized, "owner"), Want: http.StatusForbidden},
		"insufficient funds": {Err: errors.ErrInsufficientFunds, Want: http.StatusUnprocessableEntity},
		"expired":            {Err: errors.ErrExpired, Want: http.StatusUnprocessableEntity},
		"invalid input":      {Err: errors.ErrInput, Want: http.StatusBadRequest},
		"database":           {Err: errors.ErrDatabase, Want: http.StatusInternalServerError},
		"internal":           {Err: fmt.Errorf("boom"), Want: http.StatusInternalServerError},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.Want, httpStatus(tc.Err))
		})
	}
}
