/*
Package tokenomics defines the common interfaces used to tie together the
reward distribution, reserve vault, timelock and allow-list extensions, as
well as implementations of some of the simpler components.

Context is passed through context.Context between the application,
decorators, and handlers. This package defines the keys used to store
framework information in it, such as the logger, the block time, and the
event sink. Each extension may add its own keys to enrich the context.

There should exist two functions for every XYZ of type T that we want to
support in Context:

  WithXYZ(Context, T) Context
  XYZ(Context) (val T, ok bool)

All state lives in a KVStore. Extensions never keep process-global state:
every operation receives the store it mutates, and the application wraps each
transaction in a cache so that a failed operation leaves no trace.
*/
package tokenomics
