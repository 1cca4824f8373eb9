package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type statusView struct {
	Seq          uint64  `json:"seq" yaml:"seq"`
	Hash         string  `json:"hash" yaml:"hash"`
	Time         string  `json:"time" yaml:"time"`
	Unspents     uint64  `json:"unspents" yaml:"unspents"`
	Unconfirmed  uint64  `json:"unconfirmed" yaml:"unconfirmed"`
	Current      uint64  `json:"current" yaml:"current"`
	Highest      uint64  `json:"highest" yaml:"highest"`
	Percent      float64 `json:"percent" yaml:"percent"`
	Synchronized bool    `json:"synchronized" yaml:"synchronized"`
	Peers        int     `json:"peers" yaml:"peers"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the chain head and the sync progress.",
	RunE:  statusRun,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client := newClient()
	core, err := newCore(client, "")
	if err != nil {
		return err
	}

	md, err := client.BlockchainMetadata(ctx)
	if err != nil {
		return fmt.Errorf("query metadata: %w", err)
	}

	sp, err := core.SyncProgress(ctx)
	if err != nil {
		return err
	}

	sv := statusView{
		Seq:          md.Head.Seq,
		Hash:         md.Head.BlockHash,
		Time:         unixTime(md.Head.Timestamp),
		Unspents:     md.Unspents,
		Unconfirmed:  md.Unconfirmed,
		Current:      sp.Current,
		Highest:      sp.Highest,
		Percent:      sp.Percent,
		Synchronized: sp.Synchronized,
		Peers:        sp.Peers,
	}

	return render(cmd.OutOrStdout(), output, sv, func(tw *tabwriter.Writer) {
		row(tw, "Head Seq:", sv.Seq)
		row(tw, "Head Hash:", sv.Hash)
		row(tw, "Head Time:", sv.Time)
		row(tw, "Unspents:", sv.Unspents)
		row(tw, "Unconfirmed:", sv.Unconfirmed)
		row(tw, "Sync:", fmt.Sprintf("%d/%d (%.2f%%)", sv.Current, sv.Highest, sv.Percent))
		row(tw, "Synchronized:", sv.Synchronized)
		row(tw, "Peers:", sv.Peers)
	})
}
