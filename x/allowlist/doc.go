/*
Package allowlist keeps a capped set of accounts that are exempt from a fee
policy.

The set is managed by a single admin. Members are listed in the order they
were added. Once the number of members reaches the configured maximum size,
no further member can be added until one is removed or the size is raised.
A maximum size of zero disables adding entirely.

The fee policy itself is out of the scope of this package, consumers only
ask IsMember.
*/
package allowlist
