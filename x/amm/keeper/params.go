package keeper

import (
	"context"
	"encoding/binary"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// GetParams returns the current module parameters, falling back to defaults
// when none have been stored.
func (k Keeper) GetParams(ctx context.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if len(bz) != 8 {
		return types.DefaultParams()
	}
	return types.Params{TradeFeeBps: binary.BigEndian.Uint64(bz)}
}

// SetParams validates and stores the module parameters.
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, params.TradeFeeBps)
	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}
