package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pyusd-labs/simswap/testutil/keeper"
	"github.com/pyusd-labs/simswap/x/amm/types"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

// Reference pool: 100 base units (18 dp) against 10,000 quote units (6 dp).
var (
	seedBase  = math.NewIntWithDecimal(100, 18)
	seedQuote = math.NewInt(10_000_000_000)
	oneBase   = math.NewIntWithDecimal(1, 18)
)

func TestInitializePool(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	require.False(t, k.IsInitialized(f.Ctx))
	f.SeedPool(t, seedBase, seedQuote)
	require.True(t, k.IsInitialized(f.Ctx))

	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.Equal(t, seedBase, reserveBase)
	require.Equal(t, seedQuote, reserveQuote)
	require.Equal(t, seedBase.Mul(seedQuote), k.GetInvariant(f.Ctx))

	// reserves are real module holdings, not bookkeeping
	moduleAddr := k.GetModuleAddress()
	require.Equal(t, seedBase, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomBase, moduleAddr))
	require.Equal(t, seedQuote, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomQuote, moduleAddr))
}

func TestInitializePoolOnlyOnce(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	err := k.InitializePool(f.Ctx, f.Authority, seedBase, seedQuote)
	require.ErrorIs(t, err, types.ErrAlreadyInitialized)
}

func TestInitializePoolRequiresAuthority(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	outsider := testkeeper.Addr("outsider")
	err := k.InitializePool(f.Ctx, outsider, seedBase, seedQuote)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, k.IsInitialized(f.Ctx))
}

func TestInitializePoolRejectsNonPositiveReserves(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	err := k.InitializePool(f.Ctx, f.Authority, math.ZeroInt(), seedQuote)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = k.InitializePool(f.Ctx, f.Authority, seedBase, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestInitializePoolUnfundedAuthority(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	// no funding, no allowances
	err := k.InitializePool(f.Ctx, f.Authority, seedBase, seedQuote)
	require.Error(t, err)
	require.False(t, k.IsInitialized(f.Ctx))
}

func TestGetCurrentPrice(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	_, err := k.GetCurrentPrice(f.Ctx)
	require.ErrorIs(t, err, types.ErrNotInitialized)

	f.SeedPool(t, seedBase, seedQuote)

	price, err := k.GetCurrentPrice(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000_000), price)
}

func TestCalculateBuyAmount(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	// ceil(k0 / (100e18 - 1e18)) - 10_000_000_000, rounded against the buyer
	quoteIn, err := k.CalculateBuyAmount(f.Ctx, oneBase)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(101_010_102), quoteIn)
}

func TestCalculateBuyAmountEdges(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	_, err := k.CalculateBuyAmount(f.Ctx, oneBase)
	require.ErrorIs(t, err, types.ErrNotInitialized)

	f.SeedPool(t, seedBase, seedQuote)

	_, err = k.CalculateBuyAmount(f.Ctx, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = k.CalculateBuyAmount(f.Ctx, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// taking the whole reserve (or more) is unpriceable
	_, err = k.CalculateBuyAmount(f.Ctx, seedBase)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = k.CalculateBuyAmount(f.Ctx, seedBase.Add(oneBase))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCalculateSellAmount(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	// 10_000_000_000 - ceil(k0 / 101e18), rounded against the seller
	quoteOut, err := k.CalculateSellAmount(f.Ctx, oneBase)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(99_009_900), quoteOut)
}

func TestCalculateSellAmountEdges(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	_, err := k.CalculateSellAmount(f.Ctx, oneBase)
	require.ErrorIs(t, err, types.ErrNotInitialized)

	f.SeedPool(t, seedBase, seedQuote)

	_, err = k.CalculateSellAmount(f.Ctx, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// a dust sell whose payout rounds to zero is rejected, not paid nothing
	_, err = k.CalculateSellAmount(f.Ctx, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestQuotesArePure(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	for i := 0; i < 3; i++ {
		quoteIn, err := k.CalculateBuyAmount(f.Ctx, oneBase)
		require.NoError(t, err)
		require.Equal(t, math.NewInt(101_010_102), quoteIn)
	}

	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.Equal(t, seedBase, reserveBase)
	require.Equal(t, seedQuote, reserveQuote)
}

func TestGetPoolInfo(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	_, err := k.GetPoolInfo(f.Ctx)
	require.ErrorIs(t, err, types.ErrNotInitialized)

	f.SeedPool(t, seedBase, seedQuote)

	info, err := k.GetPoolInfo(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, seedBase, info.ReserveBase)
	require.Equal(t, seedQuote, info.ReserveQuote)
	require.Equal(t, seedBase.Mul(seedQuote), info.Invariant)

	// sqrt(100e18 * 1e10) = 1e15 exactly for the reference pool
	require.Equal(t, math.NewIntWithDecimal(1, 15), info.TotalLiquidity)
}
