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

func TestMsgInitializePool(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	f.Fund(t, ledgertypes.DenomBase, f.Authority, seedBase)
	f.Fund(t, ledgertypes.DenomQuote, f.Authority, seedQuote)
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomBase, f.Authority, k.GetModuleAddress(), seedBase))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, f.Authority, k.GetModuleAddress(), seedQuote))

	_, err := srv.InitializePool(f.Ctx, &types.MsgInitializePool{
		Authority:    f.Authority.String(),
		BaseReserve:  seedBase,
		QuoteReserve: seedQuote,
	})
	require.NoError(t, err)
	require.True(t, k.IsInitialized(f.Ctx))
}

func TestMsgInitializePoolRejectsOutsider(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.InitializePool(f.Ctx, &types.MsgInitializePool{
		Authority:    testkeeper.Addr("outsider").String(),
		BaseReserve:  seedBase,
		QuoteReserve: seedQuote,
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMsgBuy(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomQuote, trader, math.NewInt(200_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, trader, k.GetModuleAddress(), math.NewInt(200_000_000)))

	resp, err := srv.Buy(f.Ctx, &types.MsgBuy{
		Trader:     trader.String(),
		BaseAmount: oneBase,
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(101_010_102), resp.QuoteAmount)
}

func TestMsgBuyRejectsBadAmount(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	f.SeedPool(t, seedBase, seedQuote)

	_, err := srv.Buy(f.Ctx, &types.MsgBuy{
		Trader:     testkeeper.Addr("trader").String(),
		BaseAmount: math.ZeroInt(),
	})
	require.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestMsgSell(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	f.SeedPool(t, seedBase, seedQuote)

	trader := testkeeper.Addr("trader")
	f.Fund(t, ledgertypes.DenomBase, trader, oneBase)

	resp, err := srv.Sell(f.Ctx, &types.MsgSell{
		Trader:     trader.String(),
		BaseAmount: oneBase,
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(99_009_900), resp.QuoteAmount)
}
