package coin

import (
	"encoding/json"
	"math/big"
	"regexp"
	"strings"

	"github.com/holiman/uint256"
	"github.com/iov-one/tokenomics/errors"
)

const (
	// Decimals is the number of fractional digits of the native currency.
	Decimals = 18
)

var (
	unit    = mustUint256(new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil))
	bigUnit = unit.ToBig()

	isHumanAmount = regexp.MustCompile(`^[0-9]+(\.[0-9]{1,18})?$`).MatchString
)

// Amount is a non negative value of base units. The zero value is zero.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an amount of given base units.
func NewAmount(base uint64) Amount {
	var a Amount
	a.v.SetUint64(base)
	return a
}

// Whole returns an amount of given whole currency units.
func Whole(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	a.v.Mul(&a.v, unit)
	return a
}

// ParseAmount decodes a human readable decimal representation, for example
// "10" or "7.5". At most 18 fractional digits are accepted.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if !isHumanAmount(s) {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "invalid format %q", s)
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	frac += strings.Repeat("0", Decimals-len(frac))

	n, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "invalid format %q", s)
	}
	var a Amount
	if overflow := a.v.SetFromBig(n); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "amount %q", s)
	}
	return a, nil
}

func mustUint256(n *big.Int) *uint256.Int {
	v, overflow := uint256.FromBig(n)
	if overflow {
		panic("uint256 overflow")
	}
	return v
}

// MustParseAmount is like ParseAmount but panics on failure. Use it only
// for constants and in tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFromBytes decodes the big endian representation as returned by
// Bytes.
func AmountFromBytes(raw []byte) (Amount, error) {
	if len(raw) > 32 {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "%d bytes", len(raw))
	}
	var a Amount
	a.v.SetBytes(raw)
	return a, nil
}

// Bytes returns the minimal big endian representation. Zero is empty.
func (a Amount) Bytes() []byte {
	if a.v.IsZero() {
		return nil
	}
	return a.v.Bytes()
}

// Big returns the value as a big.Int.
func (a Amount) Big() *big.Int {
	return a.v.ToBig()
}

// IsZero returns true if this amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp compares two amounts and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(b Amount) bool {
	return a.v.Eq(&b.v)
}

// LT returns true if a is less than b.
func (a Amount) LT(b Amount) bool {
	return a.v.Lt(&b.v)
}

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) (Amount, error) {
	var res Amount
	if _, overflow := res.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns the difference of two amounts. Subtracting a greater value
// fails with ErrAmount.
func (a Amount) Sub(b Amount) (Amount, error) {
	var res Amount
	if _, underflow := res.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "%s - %s is negative", a, b)
	}
	return res, nil
}

// SubFloor returns the difference of two amounts or zero if b is greater
// than a.
func (a Amount) SubFloor(b Amount) Amount {
	if a.LT(b) {
		return Amount{}
	}
	var res Amount
	res.v.Sub(&a.v, &b.v)
	return res
}

// MulDiv returns floor(a * num / den). The intermediate product is not
// limited to 256 bits. Division by zero fails with ErrInput.
func (a Amount) MulDiv(num, den Amount) (Amount, error) {
	if den.IsZero() {
		return Amount{}, errors.Wrap(errors.ErrInput, "division by zero")
	}
	n := new(big.Int).Mul(a.Big(), num.Big())
	n.Quo(n, den.Big())
	var res Amount
	if overflow := res.v.SetFromBig(n); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s * %s / %s", a, num, den)
	}
	return res, nil
}

// Min returns the smaller of two amounts.
func Min(a, b Amount) Amount {
	if a.LT(b) {
		return a
	}
	return b
}

// Sum returns the total of all given amounts.
func Sum(amounts ...Amount) (Amount, error) {
	var total Amount
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Amount{}, err
		}
	}
	return total, nil
}

// String returns the human readable decimal representation with trailing
// fractional zeros removed.
func (a Amount) String() string {
	whole, frac := new(big.Int).QuoRem(a.v.ToBig(), bigUnit, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}
	f := frac.String()
	f = strings.Repeat("0", Decimals-len(f)) + f
	return whole.String() + "." + strings.TrimRight(f, "0")
}

// Float64 returns the approximate value in whole currency units. Use it
// only for reporting.
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).Quo(new(big.Float).SetInt(a.v.ToBig()), new(big.Float).SetInt(bigUnit)).Float64()
	return f
}

// MarshalJSON encodes the amount as a decimal string.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string as produced by MarshalJSON.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrAmount, "amount must be a string")
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Set implements the flag value interface.
func (a *Amount) Set(s string) error {
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements the flag value interface.
func (a *Amount) Type() string {
	return "amount"
}
