package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/amount"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/spf13/cobra"
)

type balanceView struct {
	Address        string `json:"address" yaml:"address"`
	Label          string `json:"label" yaml:"label"`
	Coins          string `json:"coins" yaml:"coins"`
	Hours          uint64 `json:"hours" yaml:"hours"`
	PredictedCoins string `json:"predicted_coins" yaml:"predicted_coins"`
	PredictedHours uint64 `json:"predicted_hours" yaml:"predicted_hours"`
}

type balancesView struct {
	Addresses []balanceView `json:"addresses" yaml:"addresses"`
	Total     balanceView   `json:"total" yaml:"total"`
}

var balanceAddrs []string

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the balance of addresses.",
	Long:  "Print the balance of the specified addresses, or of every address in the address book when none are specified.",
	RunE:  balanceRun,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
	balanceCmd.Flags().StringSliceVarP(&balanceAddrs, "address", "a", nil, "Addresses to query.")
}

func balanceRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	book, err := addressbook.New(bookFile)
	if err != nil {
		return fmt.Errorf("loading address book: %w", err)
	}

	addrs, err := addressArgs(balanceAddrs, book)
	if err != nil {
		return err
	}

	bal, err := newClient().Balance(ctx, addrs...)
	if err != nil {
		return fmt.Errorf("query balance: %w", err)
	}

	bv := balancesView{
		Addresses: make([]balanceView, len(addrs)),
		Total:     toBalanceView("", "total", nodeclient.BalancePair{Confirmed: bal.Confirmed, Predicted: bal.Predicted}),
	}
	for i, addr := range addrs {
		bv.Addresses[i] = toBalanceView(addr, book.Lookup(addr), bal.Addresses[addr])
	}

	return render(cmd.OutOrStdout(), output, bv, func(tw *tabwriter.Writer) {
		row(tw, "ADDRESS", "LABEL", "COINS", "HOURS", "PREDICTED COINS", "PREDICTED HOURS")
		for _, b := range append(bv.Addresses, bv.Total) {
			row(tw, b.Address, b.Label, b.Coins, amount.GroupDigits(b.Hours), b.PredictedCoins, amount.GroupDigits(b.PredictedHours))
		}
	})
}

// =============================================================================

// addressArgs validates the addresses from the command line. Without any,
// the address book addresses are used.
func addressArgs(addrs []string, book *addressbook.Book) ([]string, error) {
	if len(addrs) == 0 {
		addrs = book.Addresses()
	}
	if len(addrs) == 0 {
		return nil, errors.New("no addresses specified and the address book is empty")
	}

	for _, addr := range addrs {
		if err := address.Validate(addr); err != nil {
			return nil, fmt.Errorf("address %q: %w", addr, err)
		}
	}

	return addrs, nil
}

func toBalanceView(addr string, label string, bp nodeclient.BalancePair) balanceView {
	return balanceView{
		Address:        addr,
		Label:          label,
		Coins:          amount.FormatCoinsGrouped(bp.Confirmed.Coins),
		Hours:          bp.Confirmed.Hours,
		PredictedCoins: amount.FormatCoinsGrouped(bp.Predicted.Coins),
		PredictedHours: bp.Predicted.Hours,
	}
}
