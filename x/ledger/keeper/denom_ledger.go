package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DenomLedger is a view of the ledger Keeper bound to one denomination. It is
// what the trading and custody modules receive for each asset: they declare a
// FungibleLedger capability interface in their own types packages, and a
// DenomLedger satisfies it without exposing minting or other denoms.
type DenomLedger struct {
	keeper Keeper
	denom  string
}

// DenomName returns the denomination this view is bound to.
func (l DenomLedger) DenomName() string {
	return l.denom
}

// BalanceOf returns addr's balance.
func (l DenomLedger) BalanceOf(ctx context.Context, addr sdk.AccAddress) math.Int {
	return l.keeper.GetBalance(ctx, l.denom, addr)
}

// Allowance returns the amount spender may move out of owner's balance.
func (l DenomLedger) Allowance(ctx context.Context, owner, spender sdk.AccAddress) math.Int {
	return l.keeper.GetAllowance(ctx, l.denom, owner, spender)
}

// Approve sets spender's allowance over owner's balance.
func (l DenomLedger) Approve(ctx context.Context, owner, spender sdk.AccAddress, amount math.Int) error {
	return l.keeper.Approve(ctx, l.denom, owner, spender, amount)
}

// Transfer moves amount from one account to another.
func (l DenomLedger) Transfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error {
	return l.keeper.Transfer(ctx, l.denom, from, to, amount)
}

// TransferFrom moves amount from one account to another against spender's
// allowance.
func (l DenomLedger) TransferFrom(ctx context.Context, spender, from, to sdk.AccAddress, amount math.Int) error {
	return l.keeper.TransferFrom(ctx, l.denom, spender, from, to, amount)
}
