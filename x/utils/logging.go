package utils

import (
	"time"

	tokenomics "github.com/iov-one/tokenomics"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ tokenomics.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (r Logging) Check(ctx tokenomics.Context, store tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Checker) (*tokenomics.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx tokenomics.Context, store tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Deliverer) (*tokenomics.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx tokenomics.Context, tx tokenomics.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := tokenomics.GetLogger(ctx).With(
		"path", tokenomics.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
