package tokentest

import (
	"encoding/binary"
	"sync/atomic"
	"testing"

	tokenomics "github.com/iov-one/tokenomics"
)

var addrSeq uint64

// NewAddress returns a new, unique account address.
func NewAddress() tokenomics.Address {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], atomic.AddUint64(&addrSeq, 1))
	return tokenomics.NewCondition("test", "account", raw[:]).Address()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation.
func ParseAddress(t testing.TB, encodedAddress string) tokenomics.Address {
	t.Helper()

	addr, err := tokenomics.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
