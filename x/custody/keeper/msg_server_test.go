package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/pyusd-labs/simswap/testutil/keeper"
	"github.com/pyusd-labs/simswap/x/custody/keeper"
	"github.com/pyusd-labs/simswap/x/custody/types"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

func TestMsgDeposit(t *testing.T) {
	k, f := testkeeper.CustodyKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	depositor := testkeeper.Addr("depositor")
	f.Fund(t, ledgertypes.DenomQuote, depositor, math.NewInt(100_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, depositor, k.GetModuleAddress(), math.NewInt(100_000_000)))

	resp, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Depositor: depositor.String(),
		Amount:    math.NewInt(100_000_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000_000), resp.Balance)
}

func TestMsgDepositRejectsZero(t *testing.T) {
	k, f := testkeeper.CustodyKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{
		Depositor: testkeeper.Addr("depositor").String(),
		Amount:    math.ZeroInt(),
	})
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestMsgSendAndWithdrawAll(t *testing.T) {
	k, f := testkeeper.CustodyKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	depositor := testkeeper.Addr("depositor")
	f.Fund(t, ledgertypes.DenomQuote, depositor, math.NewInt(100_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, depositor, k.GetModuleAddress(), math.NewInt(100_000_000)))
	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{Depositor: depositor.String(), Amount: math.NewInt(100_000_000)})
	require.NoError(t, err)

	sendResp, err := srv.Send(f.Ctx, &types.MsgSend{
		Owner:     f.Authority.String(),
		Recipient: testkeeper.Addr("recipient").String(),
		Amount:    math.NewInt(30_000_000),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(70_000_000), sendResp.Balance)

	withdrawResp, err := srv.WithdrawAll(f.Ctx, &types.MsgWithdrawAll{Owner: f.Authority.String()})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(70_000_000), withdrawResp.Amount)
	require.True(t, k.GetHeldBalance(f.Ctx).IsZero())
}

func TestMsgBatchSendArityMismatch(t *testing.T) {
	k, f := testkeeper.CustodyKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	depositor := testkeeper.Addr("depositor")
	f.Fund(t, ledgertypes.DenomQuote, depositor, math.NewInt(100_000_000))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, depositor, k.GetModuleAddress(), math.NewInt(100_000_000)))
	_, err := srv.Deposit(f.Ctx, &types.MsgDeposit{Depositor: depositor.String(), Amount: math.NewInt(100_000_000)})
	require.NoError(t, err)

	_, err = srv.BatchSend(f.Ctx, &types.MsgBatchSend{
		Owner:      f.Authority.String(),
		Recipients: []string{testkeeper.Addr("first").String(), testkeeper.Addr("second").String()},
		Amounts:    []math.Int{math.NewInt(30_000_000)},
	})
	require.ErrorIs(t, err, types.ErrArityMismatch)
	require.Equal(t, math.NewInt(100_000_000), k.GetHeldBalance(f.Ctx))
}
