package types

// Event types for the AMM module
const (
	// EventTypeTradeExecuted is emitted by pool settlement.
	EventTypeTradeExecuted = "trade_executed"

	// EventTypeAssetTraded is emitted by the trading facade once a buy or
	// sell completes end to end.
	EventTypeAssetTraded = "asset_traded"

	// EventTypePoolInitialized is emitted once when reserves are seeded.
	EventTypePoolInitialized = "pool_initialized"

	AttributeKeyTrader      = "trader"
	AttributeKeyDirection   = "direction"
	AttributeKeyBaseAmount  = "base_amount"
	AttributeKeyQuoteAmount = "quote_amount"
	AttributeKeyPriceAfter  = "price_after"
	AttributeKeyTimestamp   = "timestamp"
	AttributeKeyReserveBase  = "reserve_base"
	AttributeKeyReserveQuote = "reserve_quote"

	DirectionBuy  = "buy"
	DirectionSell = "sell"
)
