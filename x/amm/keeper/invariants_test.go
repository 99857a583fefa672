package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/pyusd-labs/simswap/testutil/keeper"
	"github.com/pyusd-labs/simswap/x/amm/keeper"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

func TestAllInvariantsOnHealthyPool(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)

	// uninitialized pool is vacuously healthy
	msg, broken := keeper.AllInvariants(k)(f.Ctx)
	require.False(t, broken, msg)

	f.SeedPool(t, seedBase, seedQuote)

	msg, broken = keeper.AllInvariants(k)(f.Ctx)
	require.False(t, broken, msg)
}

func TestReserveBackingInvariantDetectsShortfall(t *testing.T) {
	k, f := testkeeper.AmmKeeper(t)
	f.SeedPool(t, seedBase, seedQuote)

	// drain part of the module's base holdings behind the keeper's back
	require.NoError(t, f.Ledger.Transfer(f.Ctx, ledgertypes.DenomBase,
		k.GetModuleAddress(), testkeeper.Addr("thief"), oneBase))

	msg, broken := keeper.ReserveBackingInvariant(k)(f.Ctx)
	require.True(t, broken, msg)
}
