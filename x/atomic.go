package x

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Atomic runs fn as a single unit of work. If db can be cache wrapped, all
// changes done by fn are written only when it succeeds. Events emitted by fn
// are forwarded to the sink of ctx only when it succeeds.
//
// Stores that cannot be cache wrapped are modified directly. The caller is
// then responsible for discarding changes of a failed call.
func Atomic(ctx tokenomics.Context, db tokenomics.KVStore, fn func(tokenomics.Context, tokenomics.KVStore) error) error {
	var buf tokenomics.EventBuffer
	wctx := tokenomics.WithEventSink(ctx, &buf)

	if c, ok := db.(tokenomics.CacheableKVStore); ok {
		cache := c.CacheWrap()
		if err := fn(wctx, cache); err != nil {
			cache.Discard()
			return err
		}
		if err := cache.Write(); err != nil {
			return errors.Wrap(err, "cannot write")
		}
	} else if err := fn(wctx, db); err != nil {
		return err
	}

	for _, e := range buf.Events() {
		tokenomics.Emit(ctx, e)
	}
	return nil
}
