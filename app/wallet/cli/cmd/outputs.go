package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/amount"
	"github.com/spf13/cobra"
)

type outputView struct {
	Hash     string `json:"hash" yaml:"hash"`
	Address  string `json:"address" yaml:"address"`
	Label    string `json:"label" yaml:"label"`
	BlockSeq uint64 `json:"block_seq" yaml:"block_seq"`
	Time     string `json:"time" yaml:"time"`
	Coins    string `json:"coins" yaml:"coins"`
	Hours    uint64 `json:"hours" yaml:"hours"`
}

var outputsAddrs []string

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "Print the unspent outputs of addresses, newest block first.",
	RunE:  outputsRun,
}

func init() {
	rootCmd.AddCommand(outputsCmd)
	outputsCmd.Flags().StringSliceVarP(&outputsAddrs, "address", "a", nil, "Addresses to query.")
}

func outputsRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	book, err := addressbook.New(bookFile)
	if err != nil {
		return fmt.Errorf("loading address book: %w", err)
	}

	addrs, err := addressArgs(outputsAddrs, book)
	if err != nil {
		return err
	}

	core, err := newCore(newClient(), "")
	if err != nil {
		return err
	}

	outs, err := core.UnspentOutputs(ctx, addrs...)
	if err != nil {
		return err
	}

	ovs := make([]outputView, len(outs))
	for i, o := range outs {
		ovs[i] = outputView{
			Hash:     o.Hash,
			Address:  o.Address,
			Label:    o.Label,
			BlockSeq: o.BlockSeq,
			Time:     clock(o.Time),
			Coins:    amount.FormatCoinsGrouped(o.Droplets),
			Hours:    o.CalculatedHours,
		}
	}

	return render(cmd.OutOrStdout(), output, ovs, func(tw *tabwriter.Writer) {
		row(tw, "HASH", "LABEL", "BLOCK", "TIME", "COINS", "HOURS")
		for _, o := range ovs {
			row(tw, o.Hash, o.Label, o.BlockSeq, o.Time, o.Coins, amount.GroupDigits(o.Hours))
		}
	})
}
