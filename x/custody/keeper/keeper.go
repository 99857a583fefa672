package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

// Keeper of the custody store. It holds quote funds on behalf of depositors
// and releases them only on the owner's instruction. The owner is fixed at
// construction and cannot be changed at runtime.
type Keeper struct {
	storeKey storetypes.StoreKey
	owner    string
	ledger   types.FungibleLedger

	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new custody Keeper instance.
func NewKeeper(
	key storetypes.StoreKey,
	owner string,
	ledger types.FungibleLedger,
) Keeper {
	return Keeper{
		storeKey:           key,
		owner:              owner,
		ledger:             ledger,
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// GetOwner returns the custody owner address.
func (k Keeper) GetOwner() string {
	return k.owner
}

// GetModuleAddress returns the cached module account address.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// getStore returns the KVStore for the custody module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetHeldBalance returns the amount currently held in custody.
func (k Keeper) GetHeldBalance(ctx context.Context) math.Int {
	bz := k.getStore(ctx).Get(types.HeldBalanceKey)
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("custody: corrupt held balance: %w", err))
	}
	return amount
}

func (k Keeper) setHeldBalance(ctx context.Context, amount math.Int) {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(types.HeldBalanceKey)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("custody: marshal held balance: %w", err))
	}
	store.Set(types.HeldBalanceKey, bz)
}

// GetBalance returns the custody balance as seen by the quote ledger, the
// authoritative figure for what the module account actually holds. The
// mirrored held balance tracks it and is cross-checked by the module
// invariant.
func (k Keeper) GetBalance(ctx context.Context) math.Int {
	return k.ledger.BalanceOf(ctx, k.moduleAddressCache)
}

func (k Keeper) requireOwner(caller sdk.AccAddress) error {
	if caller.String() != k.owner {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.owner, caller)
	}
	return nil
}
