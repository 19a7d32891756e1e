package app

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/tokenomics/coin"
	"github.com/iov-one/tokenomics/errors"
	"github.com/iov-one/tokenomics/tokentest"
	"github.com/iov-one/tokenomics/x/distribution"
	"github.com/iov-one/tokenomics/x/vault"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenInitOptions(t *testing.T) {
	Convey("Given a development genesis", t, func() {
		owner := tokentest.NewAddress()
		gen, err := GenInitOptions(GenesisParams{
			ChainID:       "dev-chain",
			Owner:         owner,
			Supply:        coin.Whole(100),
			Reserve:       coin.Whole(50),
			AllowListSize: 3,
		})
		So(err, ShouldBeNil)

		Convey("The reserve is administered by the reward pool", func() {
			var v vault.Vault
			So(json.Unmarshal(gen.AppState["vault"], &v), ShouldBeNil)
			So(v.Admin.Equals(distribution.Address), ShouldBeTrue)
		})

		Convey("The owner is the foundation when none is given", func() {
			var d distribution.Distributor
			So(json.Unmarshal(gen.AppState["distribution"], &d), ShouldBeNil)
			So(d.Owner.Equals(owner), ShouldBeTrue)
			So(d.Foundation.Equals(owner), ShouldBeTrue)
		})

		Convey("Empty accounts are not issued", func() {
			var accounts []json.RawMessage
			So(json.Unmarshal(gen.AppState["cash"], &accounts), ShouldBeNil)
			So(len(accounts), ShouldEqual, 2)
		})

		Convey("The application can be initialized from it", func() {
			a, _, err := Application(Options{})
			So(err, ShouldBeNil)
			defer a.Close()

			So(a.InitChain(gen), ShouldBeNil)
			So(a.ChainID(), ShouldEqual, "dev-chain")

			res, err := a.Query("vault", "")
			So(err, ShouldBeNil)
			So(res.(VaultView).Balance.String(), ShouldEqual, "50")

			res, err = a.Query("allowlist", "")
			So(err, ShouldBeNil)
			So(res.(AllowListView).MaxSize, ShouldEqual, uint32(3))

			Convey("A second initialization fails", func() {
				err := a.InitChain(gen)
				So(errors.ErrState.Is(err), ShouldBeTrue)
			})
		})
	})

	Convey("A genesis without an owner is rejected", t, func() {
		_, err := GenInitOptions(GenesisParams{ChainID: "dev-chain"})
		So(errors.ErrEmpty.Is(err), ShouldBeTrue)
	})
}
