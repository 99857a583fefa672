package types

import (
	"cosmossdk.io/errors"
)

// Ledger module sentinel errors
var (
	ErrInvalidAmount         = errors.Register(ModuleName, 2, "invalid amount")
	ErrInsufficientBalance   = errors.Register(ModuleName, 3, "insufficient balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 4, "insufficient allowance")
	ErrUnauthorizedMinter    = errors.Register(ModuleName, 5, "unauthorized minter")
	ErrUnauthorized          = errors.Register(ModuleName, 6, "unauthorized")
	ErrInvalidDenom          = errors.Register(ModuleName, 7, "invalid denomination")
)
