/*
Package cash keeps the native currency balance of every account.

There is no logic in the currency, except that the balance of any account
may not go below zero. Thus, this implementation is referred to as cash.
Simple and safe.

Other extensions never modify balances directly. They hold a Controller and
move value between accounts with MoveCoins, which fails with
ErrInsufficientFunds rather than overdrawing an account.
*/
package cash
