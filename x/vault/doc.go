/*
Package vault implements the reserve: an account that only accumulates
value and hands it out on request of its admin.

Anyone may deposit by sending value to the vault account (see Address).
Release is the only way out and is restricted to the admin. The
distribution extension uses the vault to top up a distribution when its
own balance cannot cover both shares, in which case the distribution
account must be the vault admin.
*/
package vault
