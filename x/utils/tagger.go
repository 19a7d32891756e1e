package utils

import (
	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/x"
	"github.com/tendermint/tendermint/libs/common"
)

const (
	// ActionKey is used by ActionTagger as the Key in the Tag it appends
	ActionKey = "action"
	// SignerKey is used by ActionTagger for every signer of the
	// transaction.
	SignerKey = "signer"
)

// ActionTagger will inspect the message being executed and add a tag
// `action = msg.Path()` and a `signer = <address>` tag for each signer.
// This should be applied as a decorator so clients have a standard way to
// search the audit trail.
type ActionTagger struct {
	auth x.Authenticator
}

var _ tokenomics.Decorator = ActionTagger{}

// NewActionTagger creates a ActionTagger decorator
func NewActionTagger(auth x.Authenticator) ActionTagger {
	return ActionTagger{auth: auth}
}

// Check just passes the request along
func (ActionTagger) Check(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Checker) (*tokenomics.CheckResult, error) {
	return next.Check(ctx, db, tx)
}

// Deliver appends tags on the result if there is a success.
func (a ActionTagger) Deliver(ctx tokenomics.Context, db tokenomics.KVStore, tx tokenomics.Tx, next tokenomics.Deliverer) (*tokenomics.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Tags = append(res.Tags, common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(tokenomics.GetPath(tx)),
	})
	for _, s := range a.auth.Signers(ctx) {
		res.Tags = append(res.Tags, common.KVPair{
			Key:   []byte(SignerKey),
			Value: []byte(s.String()),
		})
	}
	return res, nil
}
