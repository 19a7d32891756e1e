/*
Package coin implements the value arithmetic of the native currency.

An Amount is a non negative integer of base units held in 256 bits. One
whole unit of the currency is 10^18 base units, so "7.5" is represented as
7500000000000000000. All arithmetic is checked and never wraps around.

Ratios are expressed in basis points (1/10000). BasisPoints.Of computes the
floor of the proportional share so that the sum of shares never exceeds the
original amount.
*/
package coin
