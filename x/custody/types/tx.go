package types

import (
	"context"
)

// MsgServer defines the message server interface for the custody module.
type MsgServer interface {
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Send(context.Context, *MsgSend) (*MsgSendResponse, error)
	BatchSend(context.Context, *MsgBatchSend) (*MsgBatchSendResponse, error)
	WithdrawAll(context.Context, *MsgWithdrawAll) (*MsgWithdrawAllResponse, error)
}
