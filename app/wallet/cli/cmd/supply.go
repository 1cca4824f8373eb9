package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type supplyView struct {
	Current      string `json:"current" yaml:"current"`
	Total        string `json:"total" yaml:"total"`
	Max          string `json:"max" yaml:"max"`
	CurrentHours string `json:"current_hours" yaml:"current_hours"`
	TotalHours   string `json:"total_hours" yaml:"total_hours"`
}

var supplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "Print the coin supply.",
	RunE:  supplyRun,
}

func init() {
	rootCmd.AddCommand(supplyCmd)
}

func supplyRun(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	cs, err := newClient().CoinSupply(ctx)
	if err != nil {
		return fmt.Errorf("query supply: %w", err)
	}

	sv := supplyView{
		Current:      cs.CurrentSupply,
		Total:        cs.TotalSupply,
		Max:          cs.MaxSupply,
		CurrentHours: cs.CurrentCoinHourSupply,
		TotalHours:   cs.TotalCoinHourSupply,
	}

	return render(cmd.OutOrStdout(), output, sv, func(tw *tabwriter.Writer) {
		row(tw, "Current Supply:", sv.Current)
		row(tw, "Total Supply:", sv.Total)
		row(tw, "Max Supply:", sv.Max)
		row(tw, "Current Coin Hours:", sv.CurrentHours)
		row(tw, "Total Coin Hours:", sv.TotalHours)
	})
}
