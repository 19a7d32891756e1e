package coin

import (
	"github.com/iov-one/tokenomics/errors"
)

// MaxBasisPoints is the whole, 100%.
const MaxBasisPoints BasisPoints = 10000

// BasisPoints is a ratio in units of 1/10000.
type BasisPoints uint32

// Validate returns ErrInvalidRatio for values greater than 10000.
func (b BasisPoints) Validate() error {
	if b > MaxBasisPoints {
		return errors.Wrapf(errors.ErrInvalidRatio, "%d basis points", b)
	}
	return nil
}

// Of returns floor(a * b / 10000).
func (b BasisPoints) Of(a Amount) (Amount, error) {
	if err := b.Validate(); err != nil {
		return Amount{}, err
	}
	return a.MulDiv(NewAmount(uint64(b)), NewAmount(uint64(MaxBasisPoints)))
}
