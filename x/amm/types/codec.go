package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializePool{}, "amm/MsgInitializePool", nil)
	cdc.RegisterConcrete(&MsgBuy{}, "amm/MsgBuy", nil)
	cdc.RegisterConcrete(&MsgSell{}, "amm/MsgSell", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializePool{},
		&MsgBuy{},
		&MsgSell{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
