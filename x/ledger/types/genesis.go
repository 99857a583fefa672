package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Balance is a genesis account balance for one denom.
type Balance struct {
	Denom   string   `json:"denom"`
	Address string   `json:"address"`
	Amount  math.Int `json:"amount"`
}

// Minter is a genesis minter grant for one denom.
type Minter struct {
	Denom   string `json:"denom"`
	Address string `json:"address"`
}

// GenesisState defines the ledger module's genesis state.
type GenesisState struct {
	Balances []Balance `json:"balances"`
	Minters  []Minter  `json:"minters"`
}

// DefaultGenesis returns the default genesis state: no balances, no minters.
func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Balances))
	for _, b := range gs.Balances {
		if err := sdk.ValidateDenom(b.Denom); err != nil {
			return fmt.Errorf("invalid balance denom %q: %w", b.Denom, err)
		}
		if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
			return fmt.Errorf("invalid balance address %q: %w", b.Address, err)
		}
		if b.Amount.IsNil() || b.Amount.IsNegative() {
			return fmt.Errorf("balance for %s/%s must be non-negative", b.Denom, b.Address)
		}
		key := b.Denom + "/" + b.Address
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate balance entry for %s", key)
		}
		seen[key] = struct{}{}
	}
	for _, m := range gs.Minters {
		if err := sdk.ValidateDenom(m.Denom); err != nil {
			return fmt.Errorf("invalid minter denom %q: %w", m.Denom, err)
		}
		if _, err := sdk.AccAddressFromBech32(m.Address); err != nil {
			return fmt.Errorf("invalid minter address %q: %w", m.Address, err)
		}
	}
	return nil
}
