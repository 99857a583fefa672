package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// Keeper of the amm store. It owns the pool's reserve state and settles
// trades against the two asset ledgers. The module account is the pool's
// custody address on both ledgers.
type Keeper struct {
	storeKey    storetypes.StoreKey
	authority   string
	baseLedger  types.FungibleLedger
	quoteLedger types.FungibleLedger

	// moduleAddressCache avoids recomputing the module address in hot
	// paths (quotes, settlement).
	moduleAddressCache sdk.AccAddress

	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance. The authority is the only
// identity allowed to initialize the pool.
func NewKeeper(
	key storetypes.StoreKey,
	authority string,
	baseLedger types.FungibleLedger,
	quoteLedger types.FungibleLedger,
) Keeper {
	return Keeper{
		storeKey:           key,
		authority:          authority,
		baseLedger:         baseLedger,
		quoteLedger:        quoteLedger,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
		metrics:            NewMetrics(),
	}
}

// GetAuthority returns the module's authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// getStore returns the KVStore for the amm module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
