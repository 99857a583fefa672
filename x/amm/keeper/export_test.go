package keeper

import (
	"context"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// LockForTest acquires the trade settlement lock directly so external tests
// can exercise the reentrancy guard. The returned func releases it.
func (k Keeper) LockForTest(ctx context.Context) (func(), error) {
	if err := k.acquireReentrancyLock(ctx, types.LockTrade); err != nil {
		return nil, err
	}
	return func() { k.releaseReentrancyLock(ctx, types.LockTrade) }, nil
}
