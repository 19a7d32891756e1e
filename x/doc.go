/*
Package x contains the shared tooling of all extensions: the Authenticator
abstraction that every handler receives in its constructor.

Extensions live in subpackages, each of them provides its own models,
messages, handlers and genesis initializer.
*/
package x
