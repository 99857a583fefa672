package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgDeposit{}, "custody/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgSend{}, "custody/MsgSend", nil)
	cdc.RegisterConcrete(&MsgBatchSend{}, "custody/MsgBatchSend", nil)
	cdc.RegisterConcrete(&MsgWithdrawAll{}, "custody/MsgWithdrawAll", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgDeposit{},
		&MsgSend{},
		&MsgBatchSend{},
		&MsgWithdrawAll{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
