package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pyusd-labs/simswap/x/ledger/types"
)

// InitGenesis initializes the ledger state from genesis.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("ledger genesis: %w", err)
	}

	supplies := make(map[string]struct{})
	for _, b := range gs.Balances {
		addr, err := sdk.AccAddressFromBech32(b.Address)
		if err != nil {
			return fmt.Errorf("ledger genesis: %w", err)
		}
		k.setBalance(ctx, b.Denom, addr, b.Amount)
		k.setSupply(ctx, b.Denom, k.GetSupply(ctx, b.Denom).Add(b.Amount))
		supplies[b.Denom] = struct{}{}
	}

	for _, m := range gs.Minters {
		addr, err := sdk.AccAddressFromBech32(m.Address)
		if err != nil {
			return fmt.Errorf("ledger genesis: %w", err)
		}
		k.getStore(ctx).Set(types.MinterKey(m.Denom, addr), []byte{0x01})
	}
	return nil
}

// ExportGenesis exports all balances. Allowances are transient authorization
// state and are not exported, matching how the original ledgers restart.
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	gs := types.DefaultGenesis()

	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom, addr := splitBalanceKey(iterator.Key())
		gs.Balances = append(gs.Balances, types.Balance{
			Denom:   denom,
			Address: addr.String(),
			Amount:  k.GetBalance(ctx, denom, addr),
		})
	}
	return gs
}

// splitBalanceKey decodes a balance store key back into denom and address.
func splitBalanceKey(key []byte) (string, sdk.AccAddress) {
	// key = prefix(1) | denomLen(1) | denom | addrLen(1) | addr
	denomLen := int(key[1])
	denom := string(key[2 : 2+denomLen])
	addrLen := int(key[2+denomLen])
	addr := sdk.AccAddress(key[3+denomLen : 3+denomLen+addrLen])
	return denom, addr
}
