/*
Package distribution implements the reward pool: an account accumulating
value that is periodically split between a burn sink and the foundation.

Any transfer to the pool account (see Address) is a deposit. The ratio
driven Burn splits the held balance according to the burn and release
ratios, both in basis points and configured independently. Shares that
leave a remainder are paid exactly and the remainder stays in the pool.
Once the shares take the whole balance, the reserve matches the release
share of the burn and covers what the pool is missing. If the vault cannot
cover the top-up, release has priority and the burn share is reduced.

The owner can also pay out explicit amounts with BurnAndReserveRelease,
Claim and ClaimAndBurn.

Parameters (owner, foundation, ratios) are changed through a Governance
implementation chosen when the application is built: DirectGovernance
applies updates immediately, TimelockedGovernance requires every update to
be queued in the timelock first.
*/
package distribution
