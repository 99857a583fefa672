package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
// for the provided Keeper.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// CurrentPrice returns the spot price of the base asset in quote units.
func (k queryServer) CurrentPrice(ctx context.Context, req *types.QueryCurrentPriceRequest) (*types.QueryCurrentPriceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	price, err := k.GetCurrentPrice(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryCurrentPriceResponse{Price: price}, nil
}

// PoolInfo returns a point-in-time snapshot of the pool.
func (k queryServer) PoolInfo(ctx context.Context, req *types.QueryPoolInfoRequest) (*types.QueryPoolInfoResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	info, err := k.GetPoolInfo(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolInfoResponse{Info: info}, nil
}

// QuoteBuy prices a prospective buy without executing it.
func (k queryServer) QuoteBuy(ctx context.Context, req *types.QueryQuoteBuyRequest) (*types.QueryQuoteBuyResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	quoteAmount, err := k.CalculateBuyAmount(ctx, req.BaseAmount)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteBuyResponse{QuoteAmount: quoteAmount}, nil
}

// QuoteSell prices a prospective sell without executing it.
func (k queryServer) QuoteSell(ctx context.Context, req *types.QueryQuoteSellRequest) (*types.QueryQuoteSellResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	quoteAmount, err := k.CalculateSellAmount(ctx, req.BaseAmount)
	if err != nil {
		return nil, err
	}
	return &types.QueryQuoteSellResponse{QuoteAmount: quoteAmount}, nil
}

// AssetBalance returns an account's base-asset balance.
func (k queryServer) AssetBalance(ctx context.Context, req *types.QueryAssetBalanceRequest) (*types.QueryAssetBalanceResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidAmount.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrap(err.Error())
	}
	return &types.QueryAssetBalanceResponse{Amount: k.baseLedger.BalanceOf(ctx, addr)}, nil
}
