package cli

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pyusd-labs/simswap/x/amm/types"
)

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdInitializePool(),
		CmdBuy(),
		CmdSell(),
	)

	return ammTxCmd
}

// CmdInitializePool returns a CLI command handler for seeding the pool
func CmdInitializePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-pool [base-reserve] [quote-reserve]",
		Short: "Seed the pool reserves (authority only, once)",
		Long: `Seed the pool with initial reserves of both assets. Both amounts are
pulled from the signer's ledger balances, so matching allowances for the amm
module account must be in place.

Example:
  $ simswapd tx amm init-pool 100000000000000000000 10000000000 --from authority`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseReserve, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid base-reserve: %s (must be integer)", args[0])
			}
			quoteReserve, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid quote-reserve: %s (must be integer)", args[1])
			}

			msg := &types.MsgInitializePool{
				Authority:    clientCtx.GetFromAddress().String(),
				BaseReserve:  baseReserve,
				QuoteReserve: quoteReserve,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdBuy returns a CLI command handler for buying the base asset
func CmdBuy() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy [base-amount]",
		Short: "Buy base-amount of the simulated asset from the pool",
		Long: `Buy base-amount (smallest units, 18 decimals) of the simulated asset.
The quote cost is priced by the pool at execution time and pulled against the
allowance granted to the amm module account.

Example:
  $ simswapd tx amm buy 1000000000000000000 --from trader`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid base-amount: %s (must be integer)", args[0])
			}

			msg := &types.MsgBuy{
				Trader:     clientCtx.GetFromAddress().String(),
				BaseAmount: baseAmount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSell returns a CLI command handler for selling the base asset
func CmdSell() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sell [base-amount]",
		Short: "Sell base-amount of the simulated asset into the pool",
		Long: `Sell base-amount (smallest units, 18 decimals) of the simulated asset.
The quote payout is priced by the pool at execution time and credited to the
signer. No allowance is required; the transfer is authorized by the signature.

Example:
  $ simswapd tx amm sell 1000000000000000000 --from trader`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			baseAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid base-amount: %s (must be integer)", args[0])
			}

			msg := &types.MsgSell{
				Trader:     clientCtx.GetFromAddress().String(),
				BaseAmount: baseAmount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
