package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgInitializePool = "initialize_pool"
	TypeMsgBuy            = "buy"
	TypeMsgSell           = "sell"
)

var (
	_ sdk.Msg = &MsgInitializePool{}
	_ sdk.Msg = &MsgBuy{}
	_ sdk.Msg = &MsgSell{}
)

// MsgInitializePool seeds the pool reserves exactly once. Only the module
// authority may initialize; both reserves are pulled from the authority's
// ledger balances.
type MsgInitializePool struct {
	Authority    string   `json:"authority"`
	BaseReserve  math.Int `json:"base_reserve"`
	QuoteReserve math.Int `json:"quote_reserve"`
}

// Reset implements proto.Message
func (m *MsgInitializePool) Reset() { *m = MsgInitializePool{} }

// String implements proto.Message
func (m *MsgInitializePool) String() string {
	return fmt.Sprintf("MsgInitializePool{%s, base=%s, quote=%s}", m.Authority, m.BaseReserve, m.QuoteReserve)
}

// ProtoMessage implements proto.Message
func (m *MsgInitializePool) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgInitializePool
func (m *MsgInitializePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return fmt.Errorf("invalid authority address: %w", err)
	}
	if m.BaseReserve.IsNil() || !m.BaseReserve.IsPositive() {
		return fmt.Errorf("base reserve must be positive")
	}
	if m.QuoteReserve.IsNil() || !m.QuoteReserve.IsPositive() {
		return fmt.Errorf("quote reserve must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgInitializePool
// Assumes address is valid (validated in ValidateBasic)
func (m *MsgInitializePool) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{authority}
}

// MsgBuy buys BaseAmount of the simulated asset against the pool, paying
// whatever quote amount the pool prices it at.
type MsgBuy struct {
	Trader     string   `json:"trader"`
	BaseAmount math.Int `json:"base_amount"`
}

// Reset implements proto.Message
func (m *MsgBuy) Reset() { *m = MsgBuy{} }

// String implements proto.Message
func (m *MsgBuy) String() string {
	return fmt.Sprintf("MsgBuy{%s, base=%s}", m.Trader, m.BaseAmount)
}

// ProtoMessage implements proto.Message
func (m *MsgBuy) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgBuy
func (m *MsgBuy) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}
	if m.BaseAmount.IsNil() || !m.BaseAmount.IsPositive() {
		return fmt.Errorf("base amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgBuy
func (m *MsgBuy) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// MsgSell sells BaseAmount of the simulated asset into the pool for the
// quote amount the pool prices it at.
type MsgSell struct {
	Trader     string   `json:"trader"`
	BaseAmount math.Int `json:"base_amount"`
}

// Reset implements proto.Message
func (m *MsgSell) Reset() { *m = MsgSell{} }

// String implements proto.Message
func (m *MsgSell) String() string {
	return fmt.Sprintf("MsgSell{%s, base=%s}", m.Trader, m.BaseAmount)
}

// ProtoMessage implements proto.Message
func (m *MsgSell) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgSell
func (m *MsgSell) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Trader); err != nil {
		return fmt.Errorf("invalid trader address: %w", err)
	}
	if m.BaseAmount.IsNil() || !m.BaseAmount.IsPositive() {
		return fmt.Errorf("base amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSell
func (m *MsgSell) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(m.Trader)
	return []sdk.AccAddress{trader}
}

// Response types for the msg server.

// MsgInitializePoolResponse is the MsgInitializePool response.
type MsgInitializePoolResponse struct{}

// MsgBuyResponse reports the quote amount paid for the trade.
type MsgBuyResponse struct {
	QuoteAmount math.Int `json:"quote_amount"`
}

// MsgSellResponse reports the quote amount received for the trade.
type MsgSellResponse struct {
	QuoteAmount math.Int `json:"quote_amount"`
}
