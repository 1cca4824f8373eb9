package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/spf13/cobra"
)

type txOutputView struct {
	Hash    string `json:"hash" yaml:"hash"`
	Address string `json:"address" yaml:"address"`
	Label   string `json:"label" yaml:"label"`
	Coins   string `json:"coins" yaml:"coins"`
	Hours   uint64 `json:"hours" yaml:"hours"`
}

type txView struct {
	TxID      string         `json:"txid" yaml:"txid"`
	Confirmed bool           `json:"confirmed" yaml:"confirmed"`
	BlockSeq  uint64         `json:"block_seq" yaml:"block_seq"`
	Time      string         `json:"time" yaml:"time"`
	Inputs    []string       `json:"inputs" yaml:"inputs"`
	Outputs   []txOutputView `json:"outputs" yaml:"outputs"`
}

var txID string

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Print a transaction by id.",
	RunE:  txRun,
}

func init() {
	rootCmd.AddCommand(txCmd)
	txCmd.Flags().StringVar(&txID, "id", "", "Id of the transaction.")
}

func txRun(cmd *cobra.Command, args []string) error {
	if txID == "" {
		return errors.New("--id is required")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	book, err := addressbook.New(bookFile)
	if err != nil {
		return fmt.Errorf("loading address book: %w", err)
	}

	tr, err := newClient().Transaction(ctx, txID)
	if err != nil {
		return fmt.Errorf("query transaction: %w", err)
	}

	tv := txView{
		TxID:      tr.Transaction.Hash,
		Confirmed: tr.Status.Confirmed,
		BlockSeq:  tr.Status.BlockSeq,
		Time:      unixTime(int64(tr.Time)),
		Inputs:    tr.Transaction.Inputs,
		Outputs:   make([]txOutputView, len(tr.Transaction.Outputs)),
	}
	for i, o := range tr.Transaction.Outputs {
		tv.Outputs[i] = txOutputView{
			Hash:    o.Hash,
			Address: o.Address,
			Label:   book.Lookup(o.Address),
			Coins:   o.Coins,
			Hours:   o.Hours,
		}
	}

	return render(cmd.OutOrStdout(), output, tv, func(tw *tabwriter.Writer) {
		row(tw, "TxID:", tv.TxID)
		row(tw, "Confirmed:", tv.Confirmed)
		row(tw, "Block:", tv.BlockSeq)
		row(tw, "Time:", tv.Time)
		for _, in := range tv.Inputs {
			row(tw, "Input:", in)
		}
		for _, o := range tv.Outputs {
			row(tw, "Output:", o.Label, o.Coins, o.Hours)
		}
	})
}
