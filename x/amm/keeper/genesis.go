package keeper

import (
	"context"
	"fmt"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// InitGenesis initializes the AMM module state from a genesis state. Reserve
// backing is the operator's responsibility when restoring an initialized
// pool: the matching module-account balances must be present in the ledger
// genesis.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid amm genesis: %w", err))
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
	if !genState.Initialized {
		return
	}
	k.setReserves(ctx, genState.ReserveBase, genState.ReserveQuote)
	k.setIntValue(ctx, types.InvariantKey, genState.Invariant)
	k.getStore(ctx).Set(types.InitializedKey, []byte{0x01})
}

// ExportGenesis returns the AMM module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := types.DefaultGenesis()
	genState.Params = k.GetParams(ctx)
	if !k.IsInitialized(ctx) {
		return genState
	}
	genState.Initialized = true
	genState.ReserveBase, genState.ReserveQuote = k.GetReserves(ctx)
	genState.Invariant = k.GetInvariant(ctx)
	return genState
}
