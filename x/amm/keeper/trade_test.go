package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pyusd-labs/simswap/testutil/keeper"
	"github.com/pyusd-labs/simswap/x/amm/keeper"
	"github.com/pyusd-labs/simswap/x/amm/types"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

func TestBuy(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(200_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(200_000_000)))

	quoteIn, err := k.Buy(f.Ctx, trader, oneBase)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(101_010_102), quoteIn)

	// trader received the base leg and paid the quote leg
	require.Equal(t, oneBase, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomBase, trader))
	require.Equal(t, math.NewInt(98_989_898), f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomQuote, trader))

	// reserves moved with the trade
	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.Equal(t, seedBase.Sub(oneBase), reserveBase)
	require.Equal(t, math.NewInt(10_101_010_102), reserveQuote)

	// buys push the price up
	price, err := k.GetCurrentPrice(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(102_030_405), price)

	// allowance was consumed
	require.Equal(t, math.NewInt(98_989_898),
		f.Ledger.GetAllowance(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress()))
}

func TestBuyWithoutAllowance(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(200_000_000))

	_, err := k.Buy(f.Ctx, trader, oneBase)
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)
	requirePoolUntouched(t, k, f)
}

func TestBuyWithoutBalance(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	// generous allowance, empty wallet
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(1_000_000_000)))

	_, err := k.Buy(f.Ctx, trader, oneBase)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	requirePoolUntouched(t, k, f)
}

func TestBuyNotInitialized(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	trader := testkeeper.Addr("trader")
	_, err := k.Buy(f.Ctx, trader, oneBase)
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestSell(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomBase, trader, oneBase)

	// no allowance needed for sells
	quoteOut, err := k.Sell(f.Ctx, trader, oneBase)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(99_009_900), quoteOut)

	require.True(t, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomBase, trader).IsZero())
	require.Equal(t, math.NewInt(99_009_900), f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomQuote, trader))

	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.Equal(t, seedBase.Add(oneBase), reserveBase)
	require.Equal(t, math.NewInt(9_900_990_100), reserveQuote)

	// sells push the price down
	price, err := k.GetCurrentPrice(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(98_029_604), price)
}

func TestSellWithoutBalance(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	_, err := k.Sell(f.Ctx, trader, oneBase)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
	requirePoolUntouched(t, k, f)
}

func TestBuyThenSellKeepsInvariant(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)
	k0 := k.GetInvariant(f.Ctx)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(1_000_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(1_000_000_000)))

	_, err := k.Buy(f.Ctx, trader, oneBase)
	require.NoError(t, err)
	_, err = k.Sell(f.Ctx, trader, oneBase)
	require.NoError(t, err)

	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.True(t, reserveBase.Mul(reserveQuote).GTE(k0))

	// the round trip costs the trader; rounding always favors the pool
	require.True(t, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomQuote, trader).LT(math.NewInt(1_000_000_000)))
}

func TestReentrancyLockBlocksNestedSettlement(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	release, err := k.LockForTest(f.Ctx)
	require.NoError(t, err)
	defer release()

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(200_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(200_000_000)))

	_, err = k.Buy(f.Ctx, trader, oneBase)
	require.ErrorIs(t, err, types.ErrReentrancyBlocked)
}

func TestReentrancyLockReleasedAfterTrade(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(1_000_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(1_000_000_000)))

	// the lock is released on both success and failure paths
	_, err := k.Buy(f.Ctx, trader, oneBase)
	require.NoError(t, err)

	_, err = k.Buy(f.Ctx, trader, seedBase)
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = k.Buy(f.Ctx, trader, oneBase)
	require.NoError(t, err)
}

// requirePoolUntouched asserts a failed trade left no partial state behind.
func requirePoolUntouched(t *testing.T, k keeper.Keeper, f *testkeeper.Fixture) {
	t.Helper()
	reserveBase, reserveQuote := k.GetReserves(f.Ctx)
	require.Equal(t, seedBase, reserveBase)
	require.Equal(t, seedQuote, reserveQuote)
	require.Equal(t, seedBase, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomBase, k.GetModuleAddress()))
	require.Equal(t, seedQuote, f.Ledger.GetBalance(f.Ctx, ledgertypes.DenomQuote, k.GetModuleAddress()))
}
