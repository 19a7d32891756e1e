/*
Package timelock implements a delayed, replay safe execution protocol for
governance actions.

An action is identified by an opaque action ID, for example
"burn_ratio=2500". Before it can be applied it must be queued together with
an eta, the earliest time it may execute. The eta must be at least the
configured minimum delay in the future. Once the eta has passed, the entry
can be executed exactly once. Every (action ID, eta) pair is a separate
entry, so queuing the same action with another eta creates a second,
independent entry.

When a grace period is configured, an entry that was not executed within
the grace period after its eta can no longer be executed.

There is no way to cancel a queued entry.
*/
package timelock
