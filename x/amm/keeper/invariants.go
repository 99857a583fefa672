package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// RegisterInvariants registers all AMM invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "constant-product", ConstantProductInvariant(k))
	ir.RegisterRoute(types.ModuleName, "positive-reserves", PositiveReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-backing", ReserveBackingInvariant(k))
}

// AllInvariants runs all invariants of the AMM module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ConstantProductInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = PositiveReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ReserveBackingInvariant(k)(ctx)
	}
}

// ConstantProductInvariant checks that the reserve product never falls below
// the value fixed at initialization.
func ConstantProductInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.IsInitialized(ctx) {
			return sdk.FormatInvariant(types.ModuleName, "constant-product",
				"pool not initialized"), false
		}
		reserveBase, reserveQuote := k.GetReserves(ctx)
		product, err := SafeMul(reserveBase, reserveQuote)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "constant-product",
				fmt.Sprintf("reserve product overflow: %v", err)), true
		}
		if k0 := k.GetInvariant(ctx); product.LT(k0) {
			return sdk.FormatInvariant(types.ModuleName, "constant-product",
				fmt.Sprintf("reserve product %s below initial invariant %s", product, k0)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "constant-product",
			"reserve product holds"), false
	}
}

// PositiveReservesInvariant checks that an initialized pool never holds a
// zero or negative reserve.
func PositiveReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.IsInitialized(ctx) {
			return sdk.FormatInvariant(types.ModuleName, "positive-reserves",
				"pool not initialized"), false
		}
		reserveBase, reserveQuote := k.GetReserves(ctx)
		if !reserveBase.IsPositive() || !reserveQuote.IsPositive() {
			return sdk.FormatInvariant(types.ModuleName, "positive-reserves",
				fmt.Sprintf("non-positive reserves: base=%s quote=%s", reserveBase, reserveQuote)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "positive-reserves",
			"reserves positive"), false
	}
}

// ReserveBackingInvariant checks that the module account's ledger balances
// cover the cached reserve view.
func ReserveBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if !k.IsInitialized(ctx) {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
				"pool not initialized"), false
		}
		reserveBase, reserveQuote := k.GetReserves(ctx)
		moduleAddr := k.GetModuleAddress()
		baseHeld := k.baseLedger.BalanceOf(ctx, moduleAddr)
		quoteHeld := k.quoteLedger.BalanceOf(ctx, moduleAddr)
		if baseHeld.LT(reserveBase) || quoteHeld.LT(reserveQuote) {
			return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
				fmt.Sprintf("module holdings base=%s quote=%s below reserves base=%s quote=%s",
					baseHeld, quoteHeld, reserveBase, reserveQuote)), true
		}
		return sdk.FormatInvariant(types.ModuleName, "reserve-backing",
			"reserves fully backed"), false
	}
}
