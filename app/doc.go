/*
Package app contains the building blocks of an application: the router
dispatching messages to handlers, the decorator chain, the transaction
envelope, the audit log, and Application itself, which serializes all
transactions against a single committing store.

Extensions know nothing about this package. They register their handlers
on a tokenomics.Registry and their genesis loaders as tokenomics.Initializer.
*/
package app
