package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/spf13/cobra"
)

type blockView struct {
	Seq          uint64 `json:"seq" yaml:"seq"`
	Hash         string `json:"hash" yaml:"hash"`
	PreviousHash string `json:"previous_hash" yaml:"previous_hash"`
	Time         string `json:"time" yaml:"time"`
	Fee          uint64 `json:"fee" yaml:"fee"`
	Size         int    `json:"size" yaml:"size"`
	Transactions int    `json:"transactions" yaml:"transactions"`
}

var (
	blockHash  string
	blockSeq   uint64
	blockStart uint64
	blockEnd   uint64
	blockLast  uint64
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Print a block by hash or sequence.",
	RunE:  blockRun,
}

var blocksCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Print a range of blocks, or the most recent ones.",
	RunE:  blocksRun,
}

func init() {
	rootCmd.AddCommand(blockCmd)
	blockCmd.Flags().StringVar(&blockHash, "hash", "", "Hash of the block.")
	blockCmd.Flags().Uint64Var(&blockSeq, "seq", 0, "Sequence of the block.")

	rootCmd.AddCommand(blocksCmd)
	blocksCmd.Flags().Uint64Var(&blockStart, "start", 0, "First sequence of the range.")
	blocksCmd.Flags().Uint64Var(&blockEnd, "end", 0, "Last sequence of the range.")
	blocksCmd.Flags().Uint64Var(&blockLast, "last", 0, "Number of most recent blocks, instead of a range.")
}

func blockRun(cmd *cobra.Command, args []string) error {
	hashSet := cmd.Flags().Changed("hash")
	seqSet := cmd.Flags().Changed("seq")
	if hashSet == seqSet {
		return errors.New("specify exactly one of --hash or --seq")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	client := newClient()

	var b nodeclient.Block
	var err error
	switch {
	case hashSet:
		b, err = client.BlockByHash(ctx, blockHash)
	default:
		b, err = client.BlockBySeq(ctx, blockSeq)
	}
	if err != nil {
		return fmt.Errorf("query block: %w", err)
	}

	bv := toBlockView(b)

	return render(cmd.OutOrStdout(), output, bv, func(tw *tabwriter.Writer) {
		row(tw, "Seq:", bv.Seq)
		row(tw, "Hash:", bv.Hash)
		row(tw, "Previous:", bv.PreviousHash)
		row(tw, "Time:", bv.Time)
		row(tw, "Fee:", bv.Fee)
		row(tw, "Size:", bv.Size)
		row(tw, "Transactions:", bv.Transactions)
	})
}

func blocksRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	client := newClient()

	var blocks []nodeclient.Block
	var err error
	switch {
	case blockLast > 0:
		blocks, err = client.LastBlocks(ctx, blockLast)
	default:
		if blockEnd < blockStart {
			return fmt.Errorf("end %d is before start %d", blockEnd, blockStart)
		}
		blocks, err = client.Blocks(ctx, blockStart, blockEnd)
	}
	if err != nil {
		return fmt.Errorf("query blocks: %w", err)
	}

	bvs := make([]blockView, len(blocks))
	for i, b := range blocks {
		bvs[i] = toBlockView(b)
	}

	return render(cmd.OutOrStdout(), output, bvs, func(tw *tabwriter.Writer) {
		row(tw, "SEQ", "HASH", "TIME", "FEE", "TXNS")
		for _, bv := range bvs {
			row(tw, bv.Seq, bv.Hash, bv.Time, bv.Fee, bv.Transactions)
		}
	})
}

func toBlockView(b nodeclient.Block) blockView {
	return blockView{
		Seq:          b.Header.Seq,
		Hash:         b.Header.BlockHash,
		PreviousHash: b.Header.PreviousBlockHash,
		Time:         unixTime(b.Header.Timestamp),
		Fee:          b.Header.Fee,
		Size:         b.Size,
		Transactions: len(b.Body.Transactions),
	}
}
