// Package tokentest provides helpers for testing extensions and the
// application: mock handlers, transactions and address generators.
package tokentest
