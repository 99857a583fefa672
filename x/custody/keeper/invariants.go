package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

// RegisterInvariants registers all custody invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "held-balance-backing", HeldBalanceBackingInvariant(k))
}

// HeldBalanceBackingInvariant checks that the mirrored custody balance never
// exceeds what the module account actually holds on the quote ledger.
func HeldBalanceBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		held := k.GetHeldBalance(ctx)
		actual := k.GetBalance(ctx)
		if held.GT(actual) {
			return sdk.FormatInvariant(types.ModuleName, "held-balance-backing",
				fmt.Sprintf("mirrored balance %s exceeds ledger balance %s", held, actual)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "held-balance-backing",
			"custody balance fully backed"), false
	}
}
