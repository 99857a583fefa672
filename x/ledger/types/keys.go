package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "ledger"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// DenomBase is the simulated ETH-like asset (18 decimal places)
	DenomBase = "simeth"

	// DenomQuote is the PYUSD-like stable asset (6 decimal places)
	DenomQuote = "upyusd"
)

// Store key prefixes
var (
	BalanceKeyPrefix   = []byte{0x01} // prefix for account balances per denom
	AllowanceKeyPrefix = []byte{0x02} // prefix for spender allowances per denom
	MinterKeyPrefix    = []byte{0x03} // prefix for authorized minters per denom
	SupplyKeyPrefix    = []byte{0x04} // prefix for total supply per denom
)

func denomPrefix(prefix []byte, denom string) []byte {
	key := append(prefix, byte(len(denom)))
	return append(key, []byte(denom)...)
}

// BalanceKey returns the store key for an account's balance of a denom
func BalanceKey(denom string, addr sdk.AccAddress) []byte {
	return append(denomPrefix(BalanceKeyPrefix, denom), address.MustLengthPrefix(addr)...)
}

// AllowanceKey returns the store key for an owner/spender allowance of a denom
func AllowanceKey(denom string, owner, spender sdk.AccAddress) []byte {
	key := append(denomPrefix(AllowanceKeyPrefix, denom), address.MustLengthPrefix(owner)...)
	return append(key, address.MustLengthPrefix(spender)...)
}

// MinterKey returns the store key marking an address as a minter of a denom
func MinterKey(denom string, addr sdk.AccAddress) []byte {
	return append(denomPrefix(MinterKeyPrefix, denom), address.MustLengthPrefix(addr)...)
}

// SupplyKey returns the store key for the total supply of a denom
func SupplyKey(denom string) []byte {
	return denomPrefix(SupplyKeyPrefix, denom)
}
