package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// GenesisState defines the AMM module's genesis state.
type GenesisState struct {
	Params       Params   `json:"params"`
	Initialized  bool     `json:"initialized"`
	ReserveBase  math.Int `json:"reserve_base"`
	ReserveQuote math.Int `json:"reserve_quote"`
	Invariant    math.Int `json:"invariant"`
}

// DefaultGenesis returns the default genesis state: an uninitialized pool.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Initialized:  false,
		ReserveBase:  math.ZeroInt(),
		ReserveQuote: math.ZeroInt(),
		Invariant:    math.ZeroInt(),
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if !gs.Initialized {
		if !gs.ReserveBase.IsNil() && !gs.ReserveBase.IsZero() {
			return fmt.Errorf("uninitialized pool must have zero base reserve")
		}
		if !gs.ReserveQuote.IsNil() && !gs.ReserveQuote.IsZero() {
			return fmt.Errorf("uninitialized pool must have zero quote reserve")
		}
		return nil
	}
	if gs.ReserveBase.IsNil() || !gs.ReserveBase.IsPositive() {
		return fmt.Errorf("initialized pool must have positive base reserve")
	}
	if gs.ReserveQuote.IsNil() || !gs.ReserveQuote.IsPositive() {
		return fmt.Errorf("initialized pool must have positive quote reserve")
	}
	if gs.Invariant.IsNil() || !gs.Invariant.IsPositive() {
		return fmt.Errorf("initialized pool must have a positive invariant")
	}
	if gs.ReserveBase.Mul(gs.ReserveQuote).LT(gs.Invariant) {
		return fmt.Errorf("reserve product %s below invariant %s",
			gs.ReserveBase.Mul(gs.ReserveQuote), gs.Invariant)
	}
	return nil
}
