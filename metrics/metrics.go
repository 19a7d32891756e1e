// Package metrics exposes prometheus metrics about the value flowing
// through the application. Value metrics are fed from the events of
// committed transactions.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/timelock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tokenomics"

// Collector records transaction and value metrics. It implements
// app.Observer.
type Collector struct {
	TxsTotal          *prometheus.CounterVec
	EventsTotal       *prometheus.CounterVec
	BurnedTotal       prometheus.Counter
	ReleasedTotal     *prometheus.CounterVec
	ClaimedTotal      prometheus.Counter
	ReserveTopUps     prometheus.Counter
	TimelockTotal     *prometheus.CounterVec
	HTTPRequestsTotal *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// NewCollector registers all metrics with given registerer.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		TxsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "txs_total",
				Help:      "Total number of delivered transactions",
			},
			[]string{"path", "result"},
		),
		EventsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Total number of events of committed transactions",
			},
			[]string{"kind"},
		),
		BurnedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "burned_total",
				Help:      "Value sent to the burn sink, in whole units",
			},
		),
		ReleasedTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "released_total",
				Help:      "Value released, in whole units",
			},
			[]string{"source"}, // "pool", "reserve"
		),
		ClaimedTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "claimed_total",
				Help:      "Value claimed by the distributor owner, in whole units",
			},
		),
		ReserveTopUps: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reserve_top_ups_total",
				Help:      "Number of distributions that drew on the reserve",
			},
		),
		TimelockTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "timelock_entries_total",
				Help:      "Timelock entries by transition",
			},
			[]string{"state"}, // "queued", "executed"
		),
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveTx records the outcome of a delivered transaction.
func (c *Collector) ObserveTx(path string, res *tokenomics.DeliverResult, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	c.TxsTotal.WithLabelValues(path, result).Inc()
	if err != nil || res == nil {
		return
	}
	for _, e := range res.Events {
		c.observeEvent(e)
	}
}

func (c *Collector) observeEvent(e tokenomics.Event) {
	c.EventsTotal.WithLabelValues(e.EventKind()).Inc()

	switch e := e.(type) {
	case *distribution.DistributedEvent:
		burned := amount(e.Burned)
		released := amount(e.Released)
		topUp := amount(e.ReserveTopUp)
		c.BurnedTotal.Add(burned)
		c.ReleasedTotal.WithLabelValues("pool").Add(released - topUp)
		if topUp > 0 {
			c.ReleasedTotal.WithLabelValues("reserve").Add(topUp)
			c.ReserveTopUps.Inc()
		}
	case *distribution.BurnedEvent:
		c.BurnedTotal.Add(amount(e.Amount))
	case *distribution.ReleasedEvent:
		c.ReleasedTotal.WithLabelValues("pool").Add(amount(e.Amount))
	case *distribution.ClaimedEvent:
		c.ClaimedTotal.Add(amount(e.Amount))
	case *timelock.QueuedEvent:
		c.TimelockTotal.WithLabelValues("queued").Inc()
	case *timelock.ExecutedEvent:
		c.TimelockTotal.WithLabelValues("executed").Inc()
	}
}

// amount converts an event amount. Events are produced by this
// application so a malformed amount counts as zero.
func amount(s string) float64 {
	a, err := coin.ParseAmount(s)
	if err != nil {
		return 0
	}
	return a.Float64()
}

// Middleware returns a chi middleware that records HTTP metrics.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		// Use the route pattern if available, otherwise use the path
		path := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			path = rctx.RoutePattern()
		}
		status := strconv.Itoa(ww.Status())
		c.HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		c.HTTPDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// Handler serves all metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
