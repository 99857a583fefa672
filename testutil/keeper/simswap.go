package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/pyusd-labs/simswap/x/amm/keeper"
	ammtypes "github.com/pyusd-labs/simswap/x/amm/types"
	custodykeeper "github.com/pyusd-labs/simswap/x/custody/keeper"
	custodytypes "github.com/pyusd-labs/simswap/x/custody/types"
	ledgerkeeper "github.com/pyusd-labs/simswap/x/ledger/keeper"
	ledgertypes "github.com/pyusd-labs/simswap/x/ledger/types"
)

// Fixture wires the three module keepers over one in-memory multistore, the
// way they are composed in a running app. Authority owns both privileged
// roles: pool initialization and custody.
type Fixture struct {
	Ctx       sdk.Context
	Ledger    ledgerkeeper.Keeper
	Amm       ammkeeper.Keeper
	Custody   custodykeeper.Keeper
	Authority sdk.AccAddress
}

// NewFixture creates a fresh multistore with all three module stores mounted
// and returns initialized keepers over it.
func NewFixture(t testing.TB) *Fixture {
	t.Helper()

	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	ammKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)
	custodyKey := storetypes.NewKVStoreKey(custodytypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(ledgerKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ammKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(custodyKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1700000000, 0))

	authority := sdk.AccAddress([]byte("simswap_authority___"))

	ledgerK := ledgerkeeper.NewKeeper(ledgerKey, authority.String())
	ammK := ammkeeper.NewKeeper(
		ammKey,
		authority.String(),
		ledgerK.Denom(ledgertypes.DenomBase),
		ledgerK.Denom(ledgertypes.DenomQuote),
	)
	custodyK := custodykeeper.NewKeeper(
		custodyKey,
		authority.String(),
		ledgerK.Denom(ledgertypes.DenomQuote),
	)

	require.NoError(t, ledgerK.InitGenesis(ctx, *ledgertypes.DefaultGenesis()))
	ammK.InitGenesis(ctx, *ammtypes.DefaultGenesis())
	custodyK.InitGenesis(ctx, *custodytypes.DefaultGenesis())

	return &Fixture{
		Ctx:       ctx,
		Ledger:    ledgerK,
		Amm:       ammK,
		Custody:   custodyK,
		Authority: authority,
	}
}

// Addr derives a deterministic test address from a name.
func Addr(name string) sdk.AccAddress {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz)
}

// Fund mints amount of denom to addr via the ledger authority.
func (f *Fixture) Fund(t testing.TB, denom string, addr sdk.AccAddress, amount math.Int) {
	t.Helper()
	require.NoError(t, f.Ledger.Mint(f.Ctx, f.Authority.String(), denom, addr, amount))
}

// SeedPool funds the authority with both reserves, grants the amm module
// account matching allowances, and initializes the pool.
func (f *Fixture) SeedPool(t testing.TB, baseReserve, quoteReserve math.Int) {
	t.Helper()

	f.Fund(t, ledgertypes.DenomBase, f.Authority, baseReserve)
	f.Fund(t, ledgertypes.DenomQuote, f.Authority, quoteReserve)

	moduleAddr := f.Amm.GetModuleAddress()
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomBase, f.Authority, moduleAddr, baseReserve))
	require.NoError(t, f.Ledger.Approve(f.Ctx, ledgertypes.DenomQuote, f.Authority, moduleAddr, quoteReserve))

	require.NoError(t, f.Amm.InitializePool(f.Ctx, f.Authority, baseReserve, quoteReserve))
}

// AmmKeeper creates a test keeper for the amm module alongside its ledger.
func AmmKeeper(t testing.TB) (ammkeeper.Keeper, *Fixture) {
	f := NewFixture(t)
	return f.Amm, f
}

// CustodyKeeper creates a test keeper for the custody module alongside its
// ledger.
func CustodyKeeper(t testing.TB) (custodykeeper.Keeper, *Fixture) {
	f := NewFixture(t)
	return f.Custody, f
}

// LedgerKeeper creates a test keeper for the ledger module.
func LedgerKeeper(t testing.TB) (ledgerkeeper.Keeper, sdk.Context, sdk.AccAddress) {
	f := NewFixture(t)
	return f.Ledger, f.Ctx, f.Authority
}
