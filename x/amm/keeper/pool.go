package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// IsInitialized reports whether the pool has been seeded.
func (k Keeper) IsInitialized(ctx context.Context) bool {
	return k.getStore(ctx).Has(types.InitializedKey)
}

func (k Keeper) getIntValue(ctx context.Context, key []byte) math.Int {
	bz := k.getStore(ctx).Get(key)
	if bz == nil {
		return math.ZeroInt()
	}
	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("amm: corrupt store value: %w", err))
	}
	return amount
}

func (k Keeper) setIntValue(ctx context.Context, key []byte, amount math.Int) {
	bz, err := amount.Marshal()
	if err != nil {
		panic(fmt.Errorf("amm: marshal store value: %w", err))
	}
	k.getStore(ctx).Set(key, bz)
}

// GetReserves returns the current reserve pair. Reads always observe a fully
// settled pair: settlement writes both values inside one store branch.
func (k Keeper) GetReserves(ctx context.Context) (reserveBase, reserveQuote math.Int) {
	return k.getIntValue(ctx, types.ReserveBaseKey), k.getIntValue(ctx, types.ReserveQuoteKey)
}

func (k Keeper) setReserves(ctx context.Context, reserveBase, reserveQuote math.Int) {
	k.setIntValue(ctx, types.ReserveBaseKey, reserveBase)
	k.setIntValue(ctx, types.ReserveQuoteKey, reserveQuote)
}

// GetInvariant returns k0, the reserve product fixed at initialization.
func (k Keeper) GetInvariant(ctx context.Context) math.Int {
	return k.getIntValue(ctx, types.InvariantKey)
}

// InitializePool seeds the pool exactly once. Both reserves are pulled from
// the initializer's ledger balances into the module account, so the cached
// reserve view always matches real holdings. Only the module authority may
// initialize.
func (k Keeper) InitializePool(ctx context.Context, initializer sdk.AccAddress, baseReserve, quoteReserve math.Int) error {
	if initializer.String() != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, initializer)
	}
	if k.IsInitialized(ctx) {
		return types.ErrAlreadyInitialized.Wrap("pool reserves are already seeded")
	}
	if baseReserve.IsNil() || !baseReserve.IsPositive() {
		return types.ErrInvalidAmount.Wrap("base reserve must be positive")
	}
	if quoteReserve.IsNil() || !quoteReserve.IsPositive() {
		return types.ErrInvalidAmount.Wrap("quote reserve must be positive")
	}

	invariant, err := SafeMul(baseReserve, quoteReserve)
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	// Fund the module account first, state after (checks-effects pattern
	// branched so a failed leg leaves nothing behind).
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.baseLedger.TransferFrom(cacheCtx, moduleAddr, initializer, moduleAddr, baseReserve); err != nil {
		return mapLedgerError(err)
	}
	if err := k.quoteLedger.TransferFrom(cacheCtx, moduleAddr, initializer, moduleAddr, quoteReserve); err != nil {
		return mapLedgerError(err)
	}

	k.setReserves(cacheCtx, baseReserve, quoteReserve)
	k.setIntValue(cacheCtx, types.InvariantKey, invariant)
	k.getStore(cacheCtx).Set(types.InitializedKey, []byte{0x01})

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolInitialized,
			sdk.NewAttribute(types.AttributeKeyReserveBase, baseReserve.String()),
			sdk.NewAttribute(types.AttributeKeyReserveQuote, quoteReserve.String()),
		),
	)
	write()

	k.metrics.PoolReserveBase.Set(intToFloat(baseReserve))
	k.metrics.PoolReserveQuote.Set(intToFloat(quoteReserve))
	return nil
}

// GetCurrentPrice returns the spot price in quote smallest units per whole
// base unit: reserveQuote * PriceScale / reserveBase. Division by zero is
// guarded by the initialization check, never left to a runtime trap.
func (k Keeper) GetCurrentPrice(ctx context.Context) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, types.ErrNotInitialized.Wrap("no reserves to price against")
	}
	reserveBase, reserveQuote := k.GetReserves(ctx)
	if reserveBase.IsZero() {
		return math.Int{}, types.ErrNotInitialized.Wrap("base reserve is zero")
	}
	return SafeMulDiv(reserveQuote, types.PriceScale, reserveBase)
}

// CalculateBuyAmount returns the quote needed to take baseOut units of the
// base asset out of the pool while holding k0:
//
//	quoteIn = ceil(k0 / (reserveBase - baseOut)) - reserveQuote
//
// The ceiling rounds in the pool's favor. A non-zero fee parameter adds a
// spread on top, also rounded up.
func (k Keeper) CalculateBuyAmount(ctx context.Context, baseOut math.Int) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, types.ErrNotInitialized.Wrap("no reserves to price against")
	}
	if baseOut.IsNil() || !baseOut.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("base amount must be positive")
	}

	reserveBase, reserveQuote := k.GetReserves(ctx)
	if baseOut.GTE(reserveBase) {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"cannot buy %s of %s base reserve", baseOut, reserveBase)
	}

	newQuote, err := CeilDiv(k.GetInvariant(ctx), reserveBase.Sub(baseOut))
	if err != nil {
		return math.Int{}, err
	}
	quoteIn := newQuote.Sub(reserveQuote)
	if !quoteIn.IsPositive() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("trade too small to price")
	}

	params := k.GetParams(ctx)
	if params.TradeFeeBps > 0 {
		fee, err := CeilDiv(quoteIn.MulRaw(int64(params.TradeFeeBps)), math.NewInt(10000))
		if err != nil {
			return math.Int{}, err
		}
		quoteIn = quoteIn.Add(fee)
	}
	return quoteIn, nil
}

// CalculateSellAmount returns the quote paid out for adding baseIn units of
// the base asset:
//
//	quoteOut = reserveQuote - ceil(k0 / (reserveBase + baseIn))
//
// The payout is effectively floored, again favoring the pool. A non-zero fee
// parameter is deducted from the payout.
func (k Keeper) CalculateSellAmount(ctx context.Context, baseIn math.Int) (math.Int, error) {
	if !k.IsInitialized(ctx) {
		return math.Int{}, types.ErrNotInitialized.Wrap("no reserves to price against")
	}
	if baseIn.IsNil() || !baseIn.IsPositive() {
		return math.Int{}, types.ErrInvalidAmount.Wrap("base amount must be positive")
	}

	reserveBase, reserveQuote := k.GetReserves(ctx)
	newBase, err := SafeAdd(reserveBase, baseIn)
	if err != nil {
		return math.Int{}, err
	}
	newQuote, err := CeilDiv(k.GetInvariant(ctx), newBase)
	if err != nil {
		return math.Int{}, err
	}
	quoteOut := reserveQuote.Sub(newQuote)
	if !quoteOut.IsPositive() {
		return math.Int{}, types.ErrInsufficientLiquidity.Wrap("payout rounds to zero")
	}

	params := k.GetParams(ctx)
	if params.TradeFeeBps > 0 {
		fee, err := CeilDiv(quoteOut.MulRaw(int64(params.TradeFeeBps)), math.NewInt(10000))
		if err != nil {
			return math.Int{}, err
		}
		quoteOut = quoteOut.Sub(fee)
		if !quoteOut.IsPositive() {
			return math.Int{}, types.ErrInsufficientLiquidity.Wrap("payout consumed by fee")
		}
	}
	return quoteOut, nil
}

// GetPoolInfo returns a point-in-time snapshot: reserves, the current
// reserve product, and the aggregate liquidity figure (the geometric mean of
// the reserves). Pure, side-effect free.
func (k Keeper) GetPoolInfo(ctx context.Context) (types.PoolInfo, error) {
	if !k.IsInitialized(ctx) {
		return types.PoolInfo{}, types.ErrNotInitialized.Wrap("pool has no state to report")
	}
	reserveBase, reserveQuote := k.GetReserves(ctx)
	product, err := SafeMul(reserveBase, reserveQuote)
	if err != nil {
		return types.PoolInfo{}, err
	}
	return types.PoolInfo{
		ReserveBase:    reserveBase,
		ReserveQuote:   reserveQuote,
		Invariant:      product,
		TotalLiquidity: IntSqrt(product),
	}, nil
}

// settleTrade applies a priced trade to the reserves, re-derives the
// constant-product invariant, and emits the settlement event. It is only
// reachable from the buy/sell orchestration in this package; any invariant
// failure aborts the surrounding store branch with no visible side effect.
func (k Keeper) settleTrade(ctx context.Context, trader sdk.AccAddress, isBuy bool, baseAmount, quoteAmount math.Int) error {
	reserveBase, reserveQuote := k.GetReserves(ctx)

	var err error
	if isBuy {
		reserveBase, err = SafeSub(reserveBase, baseAmount)
		if err == nil {
			reserveQuote, err = SafeAdd(reserveQuote, quoteAmount)
		}
	} else {
		reserveQuote, err = SafeSub(reserveQuote, quoteAmount)
		if err == nil {
			reserveBase, err = SafeAdd(reserveBase, baseAmount)
		}
	}
	if err != nil {
		return types.ErrInvariantViolation.Wrapf("reserve update failed: %v", err)
	}

	if reserveBase.IsZero() || reserveQuote.IsZero() {
		return types.ErrInvariantViolation.Wrap("settlement would empty a reserve")
	}

	newProduct, err := SafeMul(reserveBase, reserveQuote)
	if err != nil {
		return types.ErrInvariantViolation.Wrapf("invariant recomputation failed: %v", err)
	}
	if k0 := k.GetInvariant(ctx); newProduct.LT(k0) {
		// Prior checks should make this unreachable; reaching it means a
		// pricing defect, not a user error.
		return types.ErrInvariantViolation.Wrapf("k decreased: old=%s new=%s", k0, newProduct)
	}

	k.setReserves(ctx, reserveBase, reserveQuote)

	priceAfter, err := SafeMulDiv(reserveQuote, types.PriceScale, reserveBase)
	if err != nil {
		return types.ErrInvariantViolation.Wrapf("post-trade price failed: %v", err)
	}

	direction := types.DirectionSell
	if isBuy {
		direction = types.DirectionBuy
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTradeExecuted,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseAmount.String()),
			sdk.NewAttribute(types.AttributeKeyQuoteAmount, quoteAmount.String()),
			sdk.NewAttribute(types.AttributeKeyPriceAfter, priceAfter.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, fmt.Sprintf("%d", sdkCtx.BlockTime().Unix())),
		),
	)
	return nil
}
