package distribution

import (
	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
)

// Split is the outcome of a ratio driven distribution.
type Split struct {
	// Burned is paid from the pool to the burn sink.
	Burned coin.Amount
	// FromPool is paid from the pool to the foundation.
	FromPool coin.Amount
	// TopUp is paid from the reserve to the foundation.
	TopUp coin.Amount
}

// Released returns the total paid to the foundation.
func (s Split) Released() coin.Amount {
	total, _ := s.FromPool.Add(s.TopUp)
	return total
}

// PlanSplit computes how a held balance is split for given ratios and the
// value available in the reserve.
//
// The desired shares are burn = held*burnRatio and release =
// held*releaseRatio. While both shares fit into the held balance with room
// to spare, they are paid exactly and the remainder stays in the pool.
//
// Once the shares take the whole held balance, the reserve matches the
// release ratio of the burned value and covers whatever the held balance
// is missing to pay both shares. If the reserve cannot pay all of that,
// everything it holds is used, the foundation is paid first and the burn
// is reduced proportionally to the part of the top-up the reserve could
// cover. The pool is emptied in both cases.
func PlanSplit(held, reserve coin.Amount, burnRatio, releaseRatio coin.BasisPoints) (Split, error) {
	burn, err := burnRatio.Of(held)
	if err != nil {
		return Split{}, errors.Wrap(err, "burn ratio")
	}
	release, err := releaseRatio.Of(held)
	if err != nil {
		return Split{}, errors.Wrap(err, "release ratio")
	}
	needed, err := burn.Add(release)
	if err != nil {
		return Split{}, err
	}
	if needed.LT(held) {
		return Split{Burned: burn, FromPool: release}, nil
	}

	match, err := releaseRatio.Of(burn)
	if err != nil {
		return Split{}, err
	}
	topUp, err := needed.SubFloor(held).Add(match)
	if err != nil {
		return Split{}, err
	}

	if !reserve.LT(topUp) {
		return Split{
			Burned:   burn,
			FromPool: held.SubFloor(burn),
			TopUp:    topUp,
		}, nil
	}

	burned, err := burn.MulDiv(reserve, topUp)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Burned:   burned,
		FromPool: held.SubFloor(burned),
		TopUp:    reserve,
	}, nil
}
