package x

import (
	"context"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding one for all extensions.
type Authenticator interface {
	// Signers reveals all addresses that authorized the current
	// operation.
	Signers(tokenomics.Context) []tokenomics.Address
	// HasAddress checks if given address authorized the current
	// operation.
	HasAddress(tokenomics.Context, tokenomics.Address) bool
}

type ctxKey int

const signersKey ctxKey = iota

// SignerAuth is an Authenticator reading the signers set on the context by
// WithSigners. The application sets the signers after the transaction
// origin was verified.
type SignerAuth struct{}

var _ Authenticator = SignerAuth{}

// WithSigners returns a context authorized by given addresses. Signers
// that were set before are replaced.
func WithSigners(ctx tokenomics.Context, signers ...tokenomics.Address) tokenomics.Context {
	return context.WithValue(ctx, signersKey, signers)
}

// Signers implements Authenticator.
func (SignerAuth) Signers(ctx tokenomics.Context) []tokenomics.Address {
	signers, _ := ctx.Value(signersKey).([]tokenomics.Address)
	return signers
}

// HasAddress implements Authenticator.
func (a SignerAuth) HasAddress(ctx tokenomics.Context, addr tokenomics.Address) bool {
	for _, s := range a.Signers(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// MultiAuth chains together many Authenticators into one
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticator
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// Signers combines all signers from all Authenticators
func (m MultiAuth) Signers(ctx tokenomics.Context) []tokenomics.Address {
	var res []tokenomics.Address
	for _, impl := range m.impls {
		res = append(res, impl.Signers(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator support this
func (m MultiAuth) HasAddress(ctx tokenomics.Context, addr tokenomics.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first signer if any, otherwise nil
func MainSigner(ctx tokenomics.Context, auth Authenticator) tokenomics.Address {
	signers := auth.Signers(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx tokenomics.Context, auth Authenticator, required []tokenomics.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// RequireAddress returns ErrUnauthorized unless given address authorized
// the current operation. Role is used to describe the failure.
func RequireAddress(ctx tokenomics.Context, auth Authenticator, addr tokenomics.Address, role string) error {
	if len(addr) == 0 || !auth.HasAddress(ctx, addr) {
		return errors.Wrapf(errors.ErrUnauthorized, "%s signature required", role)
	}
	return nil
}

// WithModuleAuth returns a context in which given extension account is
// authorized next to the already present signers. Extensions use it to move
// value they hold under their own Condition, for example when one extension
// calls another one as an admin.
func WithModuleAuth(ctx tokenomics.Context, addr tokenomics.Address) tokenomics.Context {
	prev, _ := ctx.Value(signersKey).([]tokenomics.Address)
	signers := make([]tokenomics.Address, 0, len(prev)+1)
	signers = append(signers, prev...)
	signers = append(signers, addr)
	return context.WithValue(ctx, signersKey, signers)
}
