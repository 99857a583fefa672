package types

import (
	"cosmossdk.io/math"
)

// PriceScale is one whole base-asset unit (18 decimal places). Prices are
// quoted in quote-asset smallest units per whole base unit:
//
//	price = reserveQuote * PriceScale / reserveBase
var PriceScale = math.NewIntWithDecimal(1, 18)

// PoolInfo is a point-in-time snapshot of the pool.
type PoolInfo struct {
	ReserveBase    math.Int `json:"reserve_base"`
	ReserveQuote   math.Int `json:"reserve_quote"`
	Invariant      math.Int `json:"invariant"`
	TotalLiquidity math.Int `json:"total_liquidity"`
}
