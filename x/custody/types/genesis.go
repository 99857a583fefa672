package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the custody module's genesis state.
type GenesisState struct {
	// HeldBalance is the quote amount the module account holds in custody.
	// The matching ledger balance must be present in the ledger genesis.
	HeldBalance math.Int `json:"held_balance"`
}

// DefaultGenesis returns the default genesis state: empty custody.
func DefaultGenesis() *GenesisState {
	return &GenesisState{HeldBalance: math.ZeroInt()}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.HeldBalance.IsNil() || gs.HeldBalance.IsNegative() {
		return fmt.Errorf("held balance must be non-negative")
	}
	return nil
}
