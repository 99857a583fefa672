package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// Overflow-safe arithmetic for pool pricing. math.Int is arbitrary-precision
// underneath, so intermediate products of two reserves never truncate; the
// checks below bound results to the 256-bit range math.Int enforces on
// assignment, turning a would-be panic into a typed error.

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c, flooring the quotient.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrap("overflow in multiplication step")
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(intermediate, c.BigInt())), nil
}

// CeilDiv divides a by b, rounding the quotient up. Pool pricing always
// rounds amounts owed to the pool upward so truncation can never drain it.
func CeilDiv(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	quo, rem := new(big.Int).QuoRem(a.BigInt(), b.BigInt(), new(big.Int))
	if rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return math.NewIntFromBigInt(quo), nil
}

// IntSqrt returns the integer square root (floor) of a non-negative value.
func IntSqrt(a math.Int) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Sqrt(a.BigInt()))
}
