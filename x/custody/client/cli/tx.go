package cli

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pyusd-labs/simswap/x/custody/types"
)

// GetTxCmd returns the transaction commands for the custody module
func GetTxCmd() *cobra.Command {
	custodyTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Custody transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	custodyTxCmd.AddCommand(
		CmdDeposit(),
		CmdSend(),
		CmdBatchSend(),
		CmdWithdrawAll(),
	)

	return custodyTxCmd
}

// CmdDeposit returns a CLI command handler for depositing into custody
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit quote funds into custody",
		Long: `Deposit amount (quote smallest units, 6 decimals) into custody. The
funds are pulled against the allowance granted to the custody module account.

Example:
  $ simswapd tx custody deposit 100000000 --from depositor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[0])
			}

			msg := &types.MsgDeposit{
				Depositor: clientCtx.GetFromAddress().String(),
				Amount:    amount,
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

// CmdSend returns a CLI command handler for paying out custody funds
func CmdSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [recipient] [amount]",
		Short: "Pay out custody funds to a recipient (owner only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgSend{
				Owner:     clientCtx.GetFromAddress().String(),
				Recipient: args[0],
				Amount:    amount,
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

// CmdBatchSend returns a CLI command handler for batch payouts
func CmdBatchSend() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-send [recipients] [amounts]",
		Short: "Pay out custody funds to several recipients (owner only)",
		Long: `Pay out custody funds to several recipients atomically. Recipients and
amounts are comma-separated parallel lists.

Example:
  $ simswapd tx custody batch-send addr1,addr2 30000000,20000000 --from owner`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			recipients := strings.Split(args[0], ",")
			rawAmounts := strings.Split(args[1], ",")

			amounts := make([]math.Int, len(rawAmounts))
			for i, raw := range rawAmounts {
				amount, ok := math.NewIntFromString(raw)
				if !ok {
					return fmt.Errorf("invalid amount at index %d: %s (must be integer)", i, raw)
				}
				amounts[i] = amount
			}

			msg := &types.MsgBatchSend{
				Owner:      clientCtx.GetFromAddress().String(),
				Recipients: recipients,
				Amounts:    amounts,
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

// CmdWithdrawAll returns a CLI command handler for sweeping custody funds
func CmdWithdrawAll() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-all",
		Short: "Sweep the full custody balance to the owner (owner only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawAll{
				Owner: clientCtx.GetFromAddress().String(),
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
