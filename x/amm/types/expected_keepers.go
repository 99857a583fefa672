package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FungibleLedger is the capability the AMM requires from each asset ledger:
// balance-and-allowance bookkeeping with standard transfer semantics. The
// pool and facade depend on this abstractly, never on a concrete asset type.
// Minting is deliberately absent; the trading core never mints.
type FungibleLedger interface {
	DenomName() string
	BalanceOf(ctx context.Context, addr sdk.AccAddress) math.Int
	Allowance(ctx context.Context, owner, spender sdk.AccAddress) math.Int
	Approve(ctx context.Context, owner, spender sdk.AccAddress, amount math.Int) error
	Transfer(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error
	TransferFrom(ctx context.Context, spender, from, to sdk.AccAddress, amount math.Int) error
}
