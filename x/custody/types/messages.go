package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgDeposit     = "deposit"
	TypeMsgSend        = "send"
	TypeMsgBatchSend   = "batch_send"
	TypeMsgWithdrawAll = "withdraw_all"
)

var (
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgSend{}
	_ sdk.Msg = &MsgBatchSend{}
	_ sdk.Msg = &MsgWithdrawAll{}
)

// MsgDeposit moves quote funds from the depositor into custody. Any account
// may deposit; the funds are pulled against the allowance the depositor
// granted to the custody module account.
type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

// Reset implements proto.Message
func (m *MsgDeposit) Reset() { *m = MsgDeposit{} }

// String implements proto.Message
func (m *MsgDeposit) String() string {
	return fmt.Sprintf("MsgDeposit{%s, amount=%s}", m.Depositor, m.Amount)
}

// ProtoMessage implements proto.Message
func (m *MsgDeposit) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgDeposit
func (m *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Depositor); err != nil {
		return fmt.Errorf("invalid depositor address: %w", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgDeposit
func (m *MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, _ := sdk.AccAddressFromBech32(m.Depositor)
	return []sdk.AccAddress{depositor}
}

// MsgSend pays out custody funds to a single recipient. Owner only.
type MsgSend struct {
	Owner     string   `json:"owner"`
	Recipient string   `json:"recipient"`
	Amount    math.Int `json:"amount"`
}

// Reset implements proto.Message
func (m *MsgSend) Reset() { *m = MsgSend{} }

// String implements proto.Message
func (m *MsgSend) String() string {
	return fmt.Sprintf("MsgSend{%s -> %s, amount=%s}", m.Owner, m.Recipient, m.Amount)
}

// ProtoMessage implements proto.Message
func (m *MsgSend) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgSend
func (m *MsgSend) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return fmt.Errorf("send amount must be positive")
	}
	return nil
}

// GetSigners returns the expected signers for MsgSend
func (m *MsgSend) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgBatchSend pays out custody funds to several recipients in one shot.
// Recipients and Amounts are parallel slices. Owner only.
type MsgBatchSend struct {
	Owner      string     `json:"owner"`
	Recipients []string   `json:"recipients"`
	Amounts    []math.Int `json:"amounts"`
}

// Reset implements proto.Message
func (m *MsgBatchSend) Reset() { *m = MsgBatchSend{} }

// String implements proto.Message
func (m *MsgBatchSend) String() string {
	return fmt.Sprintf("MsgBatchSend{%s, %d recipients}", m.Owner, len(m.Recipients))
}

// ProtoMessage implements proto.Message
func (m *MsgBatchSend) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgBatchSend. The arity check
// lives in the keeper so the failure carries the module error code; here we
// only reject structurally broken messages.
func (m *MsgBatchSend) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if len(m.Recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	for i, recipient := range m.Recipients {
		if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
			return fmt.Errorf("invalid recipient address at index %d: %w", i, err)
		}
	}
	return nil
}

// GetSigners returns the expected signers for MsgBatchSend
func (m *MsgBatchSend) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// MsgWithdrawAll sweeps the full custody balance to the owner. Owner only.
type MsgWithdrawAll struct {
	Owner string `json:"owner"`
}

// Reset implements proto.Message
func (m *MsgWithdrawAll) Reset() { *m = MsgWithdrawAll{} }

// String implements proto.Message
func (m *MsgWithdrawAll) String() string {
	return fmt.Sprintf("MsgWithdrawAll{%s}", m.Owner)
}

// ProtoMessage implements proto.Message
func (m *MsgWithdrawAll) ProtoMessage() {}

// ValidateBasic performs basic validation of MsgWithdrawAll
func (m *MsgWithdrawAll) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgWithdrawAll
func (m *MsgWithdrawAll) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(m.Owner)
	return []sdk.AccAddress{owner}
}

// Response types for the msg server.

// MsgDepositResponse reports the custody balance after the deposit.
type MsgDepositResponse struct {
	Balance math.Int `json:"balance"`
}

// MsgSendResponse reports the custody balance after the payout.
type MsgSendResponse struct {
	Balance math.Int `json:"balance"`
}

// MsgBatchSendResponse reports the custody balance after all payouts.
type MsgBatchSendResponse struct {
	Balance math.Int `json:"balance"`
}

// MsgWithdrawAllResponse reports the amount swept to the owner.
type MsgWithdrawAllResponse struct {
	Amount math.Int `json:"amount"`
}
