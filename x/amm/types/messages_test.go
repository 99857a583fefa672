package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

func testAddr(name string) string {
	bz := make([]byte, 20)
	copy(bz, name)
	return sdk.AccAddress(bz).String()
}

func TestMsgBuyValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     types.MsgBuy
		wantErr bool
	}{
		{
			name: "valid",
			msg:  types.MsgBuy{Trader: testAddr("trader"), BaseAmount: math.NewInt(1)},
		},
		{
			name:    "bad address",
			msg:     types.MsgBuy{Trader: "not-an-address", BaseAmount: math.NewInt(1)},
			wantErr: true,
		},
		{
			name:    "zero amount",
			msg:     types.MsgBuy{Trader: testAddr("trader"), BaseAmount: math.ZeroInt()},
			wantErr: true,
		},
		{
			name:    "nil amount",
			msg:     types.MsgBuy{Trader: testAddr("trader")},
			wantErr: true,
		},
		{
			name:    "negative amount",
			msg:     types.MsgBuy{Trader: testAddr("trader"), BaseAmount: math.NewInt(-1)},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Len(t, tc.msg.GetSigners(), 1)
			}
		})
	}
}

func TestMsgSellValidateBasic(t *testing.T) {
	msg := types.MsgSell{Trader: testAddr("trader"), BaseAmount: math.NewInt(5)}
	require.NoError(t, msg.ValidateBasic())

	msg.BaseAmount = math.NewInt(0)
	require.Error(t, msg.ValidateBasic())
}

func TestMsgInitializePoolValidateBasic(t *testing.T) {
	msg := types.MsgInitializePool{
		Authority:    testAddr("authority"),
		BaseReserve:  math.NewInt(100),
		QuoteReserve: math.NewInt(200),
	}
	require.NoError(t, msg.ValidateBasic())

	msg.QuoteReserve = math.ZeroInt()
	require.Error(t, msg.ValidateBasic())

	msg.QuoteReserve = math.NewInt(200)
	msg.Authority = "bogus"
	require.Error(t, msg.ValidateBasic())
}
