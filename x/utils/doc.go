// Package utils provides the decorators wrapped around every handler:
// panic recovery, logging, isolation of failed transactions, result
// tagging and event collection.
package utils
