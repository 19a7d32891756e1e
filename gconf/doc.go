/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps at most one configuration object, stored under the
"_c:<pkg>" key. The configuration is loaded from the "conf" section of the
genesis file and is validated before it is written.
*/
package gconf
