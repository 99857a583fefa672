package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/ledger/types"
)

// Keeper implements balance, allowance and minting bookkeeping for the
// simulated fungible assets. It is the stand-in for the external token
// ledgers the trading modules depend on; those modules consume it only
// through their own FungibleLedger capability interfaces.
type Keeper struct {
	storeKey  storetypes.StoreKey
	authority string
}

// NewKeeper creates a new ledger Keeper instance. The authority is the only
// identity allowed to grant minter rights.
func NewKeeper(key storetypes.StoreKey, authority string) Keeper {
	return Keeper{
		storeKey:  key,
		authority: authority,
	}
}

// Denom returns a ledger view bound to a single denomination.
func (k Keeper) Denom(denom string) DenomLedger {
	return DenomLedger{keeper: k, denom: denom}
}

// getStore returns the KVStore for the ledger module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// GetBalance returns the balance of addr in denom, zero if unset.
func (k Keeper) GetBalance(ctx context.Context, denom string, addr sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.BalanceKey(denom, addr))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("ledger: corrupt balance for %s/%s: %w", denom, addr, err))
	}
	return amount
}

func (k Keeper) setBalance(ctx context.Context, denom string, addr sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	key := types.BalanceKey(denom, addr)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("ledger: marshal balance: %w", err))
	}
	store.Set(key, bz)
}

// GetAllowance returns the amount spender may move out of owner's balance.
func (k Keeper) GetAllowance(ctx context.Context, denom string, owner, spender sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.AllowanceKey(denom, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("ledger: corrupt allowance for %s/%s/%s: %w", denom, owner, spender, err))
	}
	return amount
}

func (k Keeper) setAllowance(ctx context.Context, denom string, owner, spender sdk.AccAddress, amount math.Int) {
	store := k.getStore(ctx)
	key := types.AllowanceKey(denom, owner, spender)
	if amount.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("ledger: marshal allowance: %w", err))
	}
	store.Set(key, bz)
}

// GetSupply returns the total minted supply of a denom.
func (k Keeper) GetSupply(ctx context.Context, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.SupplyKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("ledger: corrupt supply for %s: %w", denom, err))
	}
	return amount
}

func (k Keeper) setSupply(ctx context.Context, denom string, amount math.Int) {
	store := k.getStore(ctx)
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("ledger: marshal supply: %w", err))
	}
	store.Set(types.SupplyKey(denom), bz)
}

// IsMinter reports whether addr may mint denom.
func (k Keeper) IsMinter(ctx context.Context, denom string, addr sdk.AccAddress) bool {
	return k.getStore(ctx).Has(types.MinterKey(denom, addr))
}

// AddMinter grants minter rights for a denom. Only the ledger authority may
// grant them; the trading core never calls this.
func (k Keeper) AddMinter(ctx context.Context, granter string, denom string, addr sdk.AccAddress) error {
	if granter != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, granter)
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		return types.ErrInvalidDenom.Wrapf("%s: %v", denom, err)
	}
	k.getStore(ctx).Set(types.MinterKey(denom, addr), []byte{0x01})
	return nil
}

// Transfer moves amount of denom from one account to another.
func (k Keeper) Transfer(ctx context.Context, denom string, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("transfer amount must be positive, got %s", amount)
	}

	fromBalance := k.GetBalance(ctx, denom, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s%s, needs %s", from, fromBalance, denom, amount)
	}

	k.setBalance(ctx, denom, from, fromBalance.Sub(amount))
	k.setBalance(ctx, denom, to, k.GetBalance(ctx, denom, to).Add(amount))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyFrom, from.String()),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// Approve sets spender's allowance over owner's balance. The amount replaces
// any prior allowance, standard approve semantics.
func (k Keeper) Approve(ctx context.Context, denom string, owner, spender sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return types.ErrInvalidAmount.Wrapf("allowance must be non-negative, got %s", amount)
	}

	k.setAllowance(ctx, denom, owner, spender, amount)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproval,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom moves amount of denom from one account to another on the
// strength of a prior allowance granted to spender. The allowance check runs
// before the balance check so callers see the most specific failure first.
func (k Keeper) TransferFrom(ctx context.Context, denom string, spender, from, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("transfer amount must be positive, got %s", amount)
	}

	allowance := k.GetAllowance(ctx, denom, from, spender)
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("%s allowed %s%s to %s, needs %s", from, allowance, denom, spender, amount)
	}

	if err := k.Transfer(ctx, denom, from, to, amount); err != nil {
		return err
	}

	k.setAllowance(ctx, denom, from, spender, allowance.Sub(amount))
	return nil
}

// Mint creates amount of denom in favor of to. Minter-gated; used only by
// setup and test collaborators, never by the trading core.
func (k Keeper) Mint(ctx context.Context, minter string, denom string, to sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("mint amount must be positive, got %s", amount)
	}

	minterAddr, err := sdk.AccAddressFromBech32(minter)
	if err != nil {
		return types.ErrUnauthorizedMinter.Wrapf("invalid minter address %s", minter)
	}
	if minter != k.authority && !k.IsMinter(ctx, denom, minterAddr) {
		return types.ErrUnauthorizedMinter.Wrapf("%s may not mint %s", minter, denom)
	}

	k.setBalance(ctx, denom, to, k.GetBalance(ctx, denom, to).Add(amount))
	k.setSupply(ctx, denom, k.GetSupply(ctx, denom).Add(amount))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
