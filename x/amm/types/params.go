package types

import (
	"fmt"
)

// MaxTradeFeeBps bounds the configurable spread at 10%.
const MaxTradeFeeBps = 1000

// Params holds the AMM module parameters. The single fee tier defaults to
// zero, giving the pure constant-product policy where every post-trade state
// satisfies reserveBase * reserveQuote == k0 up to pool-favoring rounding.
type Params struct {
	// TradeFeeBps is the spread retained by the pool, in basis points.
	// A non-zero value grows the invariant product on every trade.
	TradeFeeBps uint64 `json:"trade_fee_bps"`
}

// DefaultParams returns the default zero-fee parameters.
func DefaultParams() Params {
	return Params{TradeFeeBps: 0}
}

// Validate checks parameter bounds.
func (p Params) Validate() error {
	if p.TradeFeeBps > MaxTradeFeeBps {
		return fmt.Errorf("trade fee %d bps exceeds maximum %d", p.TradeFeeBps, MaxTradeFeeBps)
	}
	return nil
}
