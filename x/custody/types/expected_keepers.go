package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FungibleLedger is the capability custody requires from the quote-asset
// ledger: balances, allowances and both transfer forms. A single denom-bound
// ledger view satisfies it.
type FungibleLedger interface {
	DenomName() string
	BalanceOf(ctx context.Context, addr sdk.AccAddress) math.Int
	Allowance(ctx context.Context, owner, spender sdk.AccAddress) math.Int
	Transfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, spender, from, to sdk.AccAddress, amount math.Int) error
}
