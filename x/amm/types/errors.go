package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrUnauthorized          = errors.Register(ModuleName, 2, "unauthorized")
	ErrNotInitialized        = errors.Register(ModuleName, 3, "pool not initialized")
	ErrAlreadyInitialized    = errors.Register(ModuleName, 4, "pool already initialized")
	ErrInvalidAmount         = errors.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInsufficientBalance   = errors.Register(ModuleName, 7, "insufficient balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 8, "insufficient allowance")
	ErrReentrancyBlocked     = errors.Register(ModuleName, 9, "reentrant settlement blocked")
	ErrInvariantViolation    = errors.Register(ModuleName, 10, "constant product invariant violated")
	ErrOverflow              = errors.Register(ModuleName, 11, "arithmetic overflow")
	ErrInvalidAddress        = errors.Register(ModuleName, 12, "invalid address")
)
