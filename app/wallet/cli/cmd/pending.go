package cmd

import (
	"text/tabwriter"

	"github.com/ardanlabs/skywallet/foundation/amount"
	"github.com/spf13/cobra"
)

type pendingView struct {
	TxID     string `json:"txid" yaml:"txid"`
	Received string `json:"received" yaml:"received"`
	IsValid  bool   `json:"is_valid" yaml:"is_valid"`
	Outputs  int    `json:"outputs" yaml:"outputs"`
	Coins    string `json:"coins" yaml:"coins"`
	Hours    uint64 `json:"hours" yaml:"hours"`
}

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the unconfirmed transactions, newest first.",
	RunE:  pendingRun,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}

func pendingRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	core, err := newCore(newClient(), "")
	if err != nil {
		return err
	}

	txs, err := core.PendingTransactions(ctx)
	if err != nil {
		return err
	}

	pvs := make([]pendingView, len(txs))
	for i, tx := range txs {
		pvs[i] = pendingView{
			TxID:     tx.TxID,
			Received: clock(tx.Received),
			IsValid:  tx.IsValid,
			Outputs:  tx.Outputs,
			Coins:    amount.FormatCoinsGrouped(tx.Droplets),
			Hours:    tx.Hours,
		}
	}

	return render(cmd.OutOrStdout(), output, pvs, func(tw *tabwriter.Writer) {
		row(tw, "TXID", "RECEIVED", "VALID", "OUTPUTS", "COINS", "HOURS")
		for _, p := range pvs {
			row(tw, p.TxID, p.Received, p.IsValid, p.Outputs, p.Coins, amount.GroupDigits(p.Hours))
		}
	})
}
