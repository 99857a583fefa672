package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
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

// InitializePool handles MsgInitializePool.
func (k msgServer) InitializePool(ctx context.Context, msg *types.MsgInitializePool) (*types.MsgInitializePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidAmount.Wrap(err.Error())
	}
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	if err := k.Keeper.InitializePool(ctx, authority, msg.BaseReserve, msg.QuoteReserve); err != nil {
		return nil, err
	}
	return &types.MsgInitializePoolResponse{}, nil
}

// Buy handles MsgBuy.
func (k msgServer) Buy(ctx context.Context, msg *types.MsgBuy) (*types.MsgBuyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidAmount.Wrap(err.Error())
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	quoteAmount, err := k.Keeper.Buy(ctx, trader, msg.BaseAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgBuyResponse{QuoteAmount: quoteAmount}, nil
}

// Sell handles MsgSell.
func (k msgServer) Sell(ctx context.Context, msg *types.MsgSell) (*types.MsgSellResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidAmount.Wrap(err.Error())
	}
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	quoteAmount, err := k.Keeper.Sell(ctx, trader, msg.BaseAmount)
	if err != nil {
		return nil, err
	}
	return &types.MsgSellResponse{QuoteAmount: quoteAmount}, nil
}
