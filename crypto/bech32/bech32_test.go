package bech32

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/iov-one/tokenomics/errors"
)

func TestBench32EncodeDecode(t *testing.T) {
	// bech32  -e -h tiov 746573742d7061796c6f6164
	const enc = `tiov1w3jhxapdwpshjmr0v9jqymqq4y`

	want, err := hex.DecodeString("746573742d7061796c6f6164")
	if err != nil {
		t.Fatal(err)
	}

	hrp, payload, err := Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if hrp != "tiov" {
		t.Fatalf("unexpected hrp: %q", hrp)
	}
	if !bytes.Equal(want, payload) {
		t.Logf("want %d", want)
		t.Logf("got  %d", payload)
		t.Fatal("invalid decode")
	}

	raw, err := Encode(hrp, payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if raw != enc {
		t.Fatalf("invalid encoding: %q", raw)
	}
}

func TestEncodeDefaultHRP(t *testing.T) {
	addr := bytes.Repeat([]byte{0xde, 0xad}, 10)
	raw, err := Encode("", addr)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if !strings.HasPrefix(raw, DefaultHRP+"1") {
		t.Fatalf("unexpected prefix: %q", raw)
	}
	_, payload, err := Decode(raw)
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if !bytes.Equal(addr, payload) {
		t.Fatalf("want %X, got %X", addr, payload)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, _, err := Decode("tkn1notbech32"); !errors.ErrInput.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
}
