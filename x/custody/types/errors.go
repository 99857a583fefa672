package types

import (
	"cosmossdk.io/errors"
)

// Custody module sentinel errors
var (
	ErrUnauthorized               = errors.Register(ModuleName, 2, "caller is not the custody owner")
	ErrZeroAmount                 = errors.Register(ModuleName, 3, "invalid amount")
	ErrInsufficientCustodyBalance = errors.Register(ModuleName, 4, "insufficient custody balance")
	ErrArityMismatch              = errors.Register(ModuleName, 5, "recipients and amounts length mismatch")
	ErrInvalidAddress             = errors.Register(ModuleName, 6, "invalid address")
	ErrNothingToWithdraw          = errors.Register(ModuleName, 7, "custody balance is zero")
)
