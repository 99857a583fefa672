package keeper

import (
	"context"
	"errors"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

// Trade orchestration. Buy and Sell are the only entry points that move
// funds; each one prices the trade first, verifies the trader can cover it,
// then performs transfers and reserve settlement inside a single store branch
// so a failure in any leg leaves no partial state.

// Buy sells baseAmount units of the base asset to the trader. The quote cost
// is pulled from the trader against the allowance they granted to the module
// account, then the base leg is paid out of pool custody.
func (k Keeper) Buy(ctx context.Context, trader sdk.AccAddress, baseAmount math.Int) (math.Int, error) {
	start := time.Now()

	var quoteIn math.Int
	err := k.withReentrancyGuard(ctx, types.LockTrade, func() error {
		var err error
		quoteIn, err = k.executeBuy(ctx, trader, baseAmount)
		return err
	})
	k.recordTrade(types.DirectionBuy, err, start)
	if err != nil {
		return math.Int{}, err
	}
	return quoteIn, nil
}

func (k Keeper) executeBuy(ctx context.Context, trader sdk.AccAddress, baseAmount math.Int) (math.Int, error) {
	if trader.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("trader address is empty")
	}

	quoteIn, err := k.CalculateBuyAmount(ctx, baseAmount)
	if err != nil {
		return math.Int{}, err
	}

	moduleAddr := k.GetModuleAddress()

	// Surface funding problems as typed errors before touching state. The
	// ledger would reject these anyway, but checking here keeps the error
	// taxonomy stable regardless of ledger wording.
	if allowance := k.quoteLedger.Allowance(ctx, trader, moduleAddr); allowance.LT(quoteIn) {
		return math.Int{}, types.ErrInsufficientAllowance.Wrapf(
			"need %s%s, allowance is %s", quoteIn, k.quoteLedger.DenomName(), allowance)
	}
	if balance := k.quoteLedger.BalanceOf(ctx, trader); balance.LT(quoteIn) {
		return math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"need %s%s, balance is %s", quoteIn, k.quoteLedger.DenomName(), balance)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.quoteLedger.TransferFrom(cacheCtx, moduleAddr, trader, moduleAddr, quoteIn); err != nil {
		return math.Int{}, mapLedgerError(err)
	}
	if err := k.baseLedger.Transfer(cacheCtx, moduleAddr, trader, baseAmount); err != nil {
		return math.Int{}, mapLedgerError(err)
	}
	if err := k.settleTrade(cacheCtx, trader, true, baseAmount, quoteIn); err != nil {
		return math.Int{}, err
	}
	write()

	k.emitAssetTraded(sdkCtx, trader, types.DirectionBuy, baseAmount, quoteIn)
	return quoteIn, nil
}

// Sell buys baseAmount units of the base asset from the trader. The base leg
// is a direct transfer authorized by the trader's own signature; no allowance
// is involved. The quote payout comes out of pool custody.
func (k Keeper) Sell(ctx context.Context, trader sdk.AccAddress, baseAmount math.Int) (math.Int, error) {
	start := time.Now()

	var quoteOut math.Int
	err := k.withReentrancyGuard(ctx, types.LockTrade, func() error {
		var err error
		quoteOut, err = k.executeSell(ctx, trader, baseAmount)
		return err
	})
	k.recordTrade(types.DirectionSell, err, start)
	if err != nil {
		return math.Int{}, err
	}
	return quoteOut, nil
}

func (k Keeper) executeSell(ctx context.Context, trader sdk.AccAddress, baseAmount math.Int) (math.Int, error) {
	if trader.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("trader address is empty")
	}

	quoteOut, err := k.CalculateSellAmount(ctx, baseAmount)
	if err != nil {
		return math.Int{}, err
	}

	if balance := k.baseLedger.BalanceOf(ctx, trader); balance.LT(baseAmount) {
		return math.Int{}, types.ErrInsufficientBalance.Wrapf(
			"need %s%s, balance is %s", baseAmount, k.baseLedger.DenomName(), balance)
	}

	moduleAddr := k.GetModuleAddress()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	if err := k.baseLedger.Transfer(cacheCtx, trader, moduleAddr, baseAmount); err != nil {
		return math.Int{}, mapLedgerError(err)
	}
	if err := k.quoteLedger.Transfer(cacheCtx, moduleAddr, trader, quoteOut); err != nil {
		return math.Int{}, mapLedgerError(err)
	}
	if err := k.settleTrade(cacheCtx, trader, false, baseAmount, quoteOut); err != nil {
		return math.Int{}, err
	}
	write()

	k.emitAssetTraded(sdkCtx, trader, types.DirectionSell, baseAmount, quoteOut)
	return quoteOut, nil
}

func (k Keeper) emitAssetTraded(sdkCtx sdk.Context, trader sdk.AccAddress, direction string, baseAmount, quoteAmount math.Int) {
	reserveBase, reserveQuote := k.GetReserves(sdkCtx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAssetTraded,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseAmount.String()),
			sdk.NewAttribute(types.AttributeKeyQuoteAmount, quoteAmount.String()),
			sdk.NewAttribute(types.AttributeKeyReserveBase, reserveBase.String()),
			sdk.NewAttribute(types.AttributeKeyReserveQuote, reserveQuote.String()),
		),
	)

	k.metrics.PoolReserveBase.Set(intToFloat(reserveBase))
	k.metrics.PoolReserveQuote.Set(intToFloat(reserveQuote))
	k.metrics.TradeVolumeQuote.WithLabelValues(direction).Add(intToFloat(quoteAmount))
}

// mapLedgerError translates ledger failures into this module's error space so
// callers see one taxonomy for a trade, whichever layer rejected it.
func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledgertypes.ErrInsufficientBalance):
		return types.ErrInsufficientBalance.Wrap(err.Error())
	case errors.Is(err, ledgertypes.ErrInsufficientAllowance):
		return types.ErrInsufficientAllowance.Wrap(err.Error())
	case errors.Is(err, ledgertypes.ErrInvalidAmount):
		return types.ErrInvalidAmount.Wrap(err.Error())
	default:
		return err
	}
}
