package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Deposit handles MsgDeposit.
func (k msgServer) Deposit(ctx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrZeroAmount.Wrap(err.Error())
	}
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	balance, err := k.Keeper.Deposit(ctx, depositor, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{Balance: balance}, nil
}

// Send handles MsgSend.
func (k msgServer) Send(ctx context.Context, msg *types.MsgSend) (*types.MsgSendResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrZeroAmount.Wrap(err.Error())
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	balance, err := k.Keeper.Send(ctx, owner, recipient, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgSendResponse{Balance: balance}, nil
}

// BatchSend handles MsgBatchSend.
func (k msgServer) BatchSend(ctx context.Context, msg *types.MsgBatchSend) (*types.MsgBatchSendResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	recipients := make([]sdk.AccAddress, len(msg.Recipients))
	for i, bech := range msg.Recipients {
		recipient, err := sdk.AccAddressFromBech32(bech)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("recipient at index %d: %v", i, err)
		}
		recipients[i] = recipient
	}
	balance, err := k.Keeper.BatchSend(ctx, owner, recipients, msg.Amounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgBatchSendResponse{Balance: balance}, nil
}

// WithdrawAll handles MsgWithdrawAll.
func (k msgServer) WithdrawAll(ctx context.Context, msg *types.MsgWithdrawAll) (*types.MsgWithdrawAllResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	amount, err := k.Keeper.WithdrawAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawAllResponse{Amount: amount}, nil
}
