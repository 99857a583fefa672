package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

// Deposit pulls amount of the quote asset from the depositor into custody.
// The depositor must have granted the custody module account an allowance of
// at least amount beforehand. Any account may deposit.
func (k Keeper) Deposit(ctx context.Context, depositor sdk.AccAddress, amount math.Int) (math.Int, error) {
	if depositor.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("depositor address is empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit amount must be positive")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	cacheCtx, write := sdkCtx.CacheContext()
	if err := k.ledger.TransferFrom(cacheCtx, moduleAddr, depositor, moduleAddr, amount); err != nil {
		return math.Int{}, err
	}
	balance := k.GetHeldBalance(cacheCtx).Add(amount)
	k.setHeldBalance(cacheCtx, balance)

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundsReceived,
			sdk.NewAttribute(types.AttributeKeyDepositor, depositor.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
		),
	)
	write()

	return balance, nil
}

// Send pays out amount of the custody balance to a single recipient.
// Owner only.
func (k Keeper) Send(ctx context.Context, caller, recipient sdk.AccAddress, amount math.Int) (math.Int, error) {
	if err := k.requireOwner(caller); err != nil {
		return math.Int{}, err
	}
	if recipient.Empty() {
		return math.Int{}, types.ErrInvalidAddress.Wrap("recipient address is empty")
	}
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("send amount must be positive")
	}

	held := k.GetHeldBalance(ctx)
	if held.LT(amount) {
		return math.Int{}, types.ErrInsufficientCustodyBalance.Wrapf(
			"held %s, requested %s", held, amount)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cacheCtx, write := sdkCtx.CacheContext()
	if err := k.ledger.Transfer(cacheCtx, k.GetModuleAddress(), recipient, amount); err != nil {
		return math.Int{}, err
	}
	balance := held.Sub(amount)
	k.setHeldBalance(cacheCtx, balance)

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundsSent,
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
		),
	)
	write()

	return balance, nil
}

// BatchSend pays out to several recipients in one atomic operation. The
// recipients and amounts slices are parallel; a length mismatch, a bad
// amount, or an aggregate exceeding the custody balance rejects the whole
// batch with no partial payout.
func (k Keeper) BatchSend(ctx context.Context, caller sdk.AccAddress, recipients []sdk.AccAddress, amounts []math.Int) (math.Int, error) {
	if err := k.requireOwner(caller); err != nil {
		return math.Int{}, err
	}
	if len(recipients) != len(amounts) {
		return math.Int{}, types.ErrArityMismatch.Wrapf(
			"%d recipients, %d amounts", len(recipients), len(amounts))
	}
	if len(recipients) == 0 {
		return math.Int{}, types.ErrZeroAmount.Wrap("batch is empty")
	}

	total := math.ZeroInt()
	for i, amount := range amounts {
		if recipients[i].Empty() {
			return math.Int{}, types.ErrInvalidAddress.Wrapf("recipient at index %d is empty", i)
		}
		if amount.IsNil() || !amount.IsPositive() {
			return math.Int{}, types.ErrZeroAmount.Wrapf("amount at index %d must be positive", i)
		}
		total = total.Add(amount)
	}

	held := k.GetHeldBalance(ctx)
	if held.LT(total) {
		return math.Int{}, types.ErrInsufficientCustodyBalance.Wrapf(
			"held %s, batch total %s", held, total)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	moduleAddr := k.GetModuleAddress()

	cacheCtx, write := sdkCtx.CacheContext()
	names := make([]string, len(recipients))
	for i, recipient := range recipients {
		if err := k.ledger.Transfer(cacheCtx, moduleAddr, recipient, amounts[i]); err != nil {
			return math.Int{}, err
		}
		names[i] = recipient.String()
	}
	balance := held.Sub(total)
	k.setHeldBalance(cacheCtx, balance)

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBatchFundsSent,
			sdk.NewAttribute(types.AttributeKeyRecipients, strings.Join(names, ",")),
			sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
			sdk.NewAttribute(types.AttributeKeyBalance, balance.String()),
			sdk.NewAttribute("count", fmt.Sprintf("%d", len(recipients))),
		),
	)
	write()

	return balance, nil
}

// WithdrawAll sweeps the entire custody balance to the owner. Owner only.
func (k Keeper) WithdrawAll(ctx context.Context, caller sdk.AccAddress) (math.Int, error) {
	if err := k.requireOwner(caller); err != nil {
		return math.Int{}, err
	}

	held := k.GetHeldBalance(ctx)
	if held.IsZero() {
		return math.Int{}, types.ErrNothingToWithdraw
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	cacheCtx, write := sdkCtx.CacheContext()
	if err := k.ledger.Transfer(cacheCtx, k.GetModuleAddress(), caller, held); err != nil {
		return math.Int{}, err
	}
	k.setHeldBalance(cacheCtx, math.ZeroInt())

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundsWithdrawn,
			sdk.NewAttribute(types.AttributeKeyOwner, caller.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, held.String()),
		),
	)
	write()

	return held, nil
}
