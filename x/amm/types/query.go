package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the read-only query interface for the AMM module.
// All handlers are pure: they never mutate reserves.
type QueryServer interface {
	CurrentPrice(context.Context, *QueryCurrentPriceRequest) (*QueryCurrentPriceResponse, error)
	PoolInfo(context.Context, *QueryPoolInfoRequest) (*QueryPoolInfoResponse, error)
	QuoteBuy(context.Context, *QueryQuoteBuyRequest) (*QueryQuoteBuyResponse, error)
	QuoteSell(context.Context, *QueryQuoteSellRequest) (*QueryQuoteSellResponse, error)
	AssetBalance(context.Context, *QueryAssetBalanceRequest) (*QueryAssetBalanceResponse, error)
}

// QueryCurrentPriceRequest requests the spot price.
type QueryCurrentPriceRequest struct{}

// QueryCurrentPriceResponse carries the spot price in quote smallest units
// per whole base unit.
type QueryCurrentPriceResponse struct {
	Price math.Int `json:"price"`
}

// QueryPoolInfoRequest requests a pool snapshot.
type QueryPoolInfoRequest struct{}

// QueryPoolInfoResponse carries a point-in-time pool snapshot.
type QueryPoolInfoResponse struct {
	Info PoolInfo `json:"info"`
}

// QueryQuoteBuyRequest prices a prospective buy of BaseAmount.
type QueryQuoteBuyRequest struct {
	BaseAmount math.Int `json:"base_amount"`
}

// QueryQuoteBuyResponse carries the quote the pool would charge.
type QueryQuoteBuyResponse struct {
	QuoteAmount math.Int `json:"quote_amount"`
}

// QueryQuoteSellRequest prices a prospective sell of BaseAmount.
type QueryQuoteSellRequest struct {
	BaseAmount math.Int `json:"base_amount"`
}

// QueryQuoteSellResponse carries the quote the pool would pay out.
type QueryQuoteSellResponse struct {
	QuoteAmount math.Int `json:"quote_amount"`
}

// QueryAssetBalanceRequest requests an identity's base-asset balance.
type QueryAssetBalanceRequest struct {
	Address string `json:"address"`
}

// QueryAssetBalanceResponse carries the base-asset balance.
type QueryAssetBalanceResponse struct {
	Amount math.Int `json:"amount"`
}
