package keeper

import (
	"context"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// Reentrancy guards persisted in the KVStore. A lock held in state survives
// any re-entry path within the same execution context, unlike an in-memory
// mutex which would not compose with store branching.

// withReentrancyGuard runs fn while holding the named settlement lock.
func (k Keeper) withReentrancyGuard(ctx context.Context, lockName string, fn func() error) error {
	if err := k.acquireReentrancyLock(ctx, lockName); err != nil {
		return err
	}
	// Release even if fn panics.
	defer k.releaseReentrancyLock(ctx, lockName)

	return fn()
}

func (k Keeper) acquireReentrancyLock(ctx context.Context, lockName string) error {
	store := k.getStore(ctx)
	key := types.ReentrancyLockKey(lockName)

	if store.Has(key) {
		return types.ErrReentrancyBlocked.Wrapf("operation %s is already in progress", lockName)
	}

	store.Set(key, []byte{0x01})
	return nil
}

func (k Keeper) releaseReentrancyLock(ctx context.Context, lockName string) {
	k.getStore(ctx).Delete(types.ReentrancyLockKey(lockName))
}
