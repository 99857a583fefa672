package keeper

import (
	"context"
	"fmt"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

// InitGenesis initializes the custody module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Errorf("invalid custody genesis: %w", err))
	}
	k.setHeldBalance(ctx, genState.HeldBalance)
}

// ExportGenesis returns the custody module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{HeldBalance: k.GetHeldBalance(ctx)}
}
