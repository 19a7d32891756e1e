package tokenomics_test

import (
	"testing"

	tokenomics "github.com/iov-one/tokenomics"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/tokentest"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      tokenomics.Tx
		dst     tokenomics.Msg
		wantErr *errors.Error
	}{
		"success": {
			tx:  &tokentest.Tx{Msg: &tokentest.Msg{RoutePath: "vault/release"}},
			dst: &tokentest.Msg{RoutePath: "vault/release"},
		},
		"path mismatch": {
			tx:      &tokentest.Tx{Msg: &tokentest.Msg{RoutePath: "vault/release"}},
			dst:     &tokentest.Msg{RoutePath: "vault/update_admin"},
			wantErr: errors.ErrMsg,
		},
		"decoding failure": {
			tx: &tokentest.Tx{
				Msg: &tokentest.Msg{RoutePath: "vault/release"},
				Err: errors.ErrInput,
			},
			dst:     &tokentest.Msg{RoutePath: "vault/release"},
			wantErr: errors.ErrInput,
		},
		"invalid message": {
			tx: &tokentest.Tx{Msg: &tokentest.Msg{
				RoutePath: "vault/release",
				Err:       errors.ErrAmount,
			}},
			dst:     &tokentest.Msg{RoutePath: "vault/release"},
			wantErr: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tokenomics.LoadMsg(tc.tx, tc.dst); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	if got := tokenomics.GetPath(&tokentest.Tx{}); got != "(missing)" {
		t.Fatalf("unexpected path: %q", got)
	}
	tx := &tokentest.Tx{Msg: &tokentest.Msg{RoutePath: "allowlist/add"}}
	if got := tokenomics.GetPath(tx); got != "allowlist/add" {
		t.Fatalf("unexpected path: %q", got)
	}
}
