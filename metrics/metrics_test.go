package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/timelock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTx(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveTx("distribution/burn", &tokenomics.DeliverResult{
		Events: []tokenomics.Event{
			&distribution.DistributedEvent{Burned: "5", Released: "7.5", ReserveTopUp: "2.5"},
		},
	}, nil)
	c.ObserveTx("distribution/burn", &tokenomics.DeliverResult{
		Events: []tokenomics.Event{
			&distribution.DistributedEvent{Burned: "0", Released: "10", ReserveTopUp: "0"},
		},
	}, nil)
	c.ObserveTx("distribution/claim_and_burn", &tokenomics.DeliverResult{
		Events: []tokenomics.Event{
			&distribution.ClaimedEvent{Amount: "1"},
			&distribution.BurnedEvent{Amount: "0.5"},
		},
	}, nil)
	c.ObserveTx("distribution/queue_update", &tokenomics.DeliverResult{
		Events: []tokenomics.Event{&timelock.QueuedEvent{ActionID: "distribution/burn_ratio=10"}},
	}, nil)
	c.ObserveTx("vault/release", nil, errors.ErrUnauthorized)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.TxsTotal.WithLabelValues("distribution/burn", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.TxsTotal.WithLabelValues("vault/release", "error")))
	assert.Equal(t, 5.5, testutil.ToFloat64(c.BurnedTotal))
	assert.Equal(t, 15.0, testutil.ToFloat64(c.ReleasedTotal.WithLabelValues("pool")))
	assert.Equal(t, 2.5, testutil.ToFloat64(c.ReleasedTotal.WithLabelValues("reserve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ReserveTopUps))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ClaimedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.TimelockTotal.WithLabelValues("queued")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.EventsTotal.WithLabelValues("distribution/distributed")))
}

func TestHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/query/{what}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Method(http.MethodGet, "/metrics", Handler(reg))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/query/vault", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequestsTotal.WithLabelValues("GET", "/query/{what}", "418")))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tokenomics_http_requests_total"))
}
