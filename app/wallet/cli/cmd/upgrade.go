package cmd

import (
	"errors"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type upgradeView struct {
	Current string `json:"current" yaml:"current"`
	Latest  string `json:"latest" yaml:"latest"`
	Upgrade bool   `json:"upgrade" yaml:"upgrade"`
}

var upgradeLatest string

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Check whether the node release is behind a release.",
	RunE:  upgradeRun,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
	upgradeCmd.Flags().StringVarP(&upgradeLatest, "latest", "l", "", "Latest release, e.g. 0.25.1.")
}

func upgradeRun(cmd *cobra.Command, args []string) error {
	if upgradeLatest == "" {
		return errors.New("--latest is required")
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	core, err := newCore(newClient(), upgradeLatest)
	if err != nil {
		return err
	}

	u, err := core.CheckUpgrade(ctx)
	if err != nil {
		return err
	}

	uv := upgradeView{
		Current: u.Current,
		Latest:  u.Latest,
		Upgrade: u.Upgrade,
	}

	return render(cmd.OutOrStdout(), output, uv, func(tw *tabwriter.Writer) {
		row(tw, "Current:", uv.Current)
		row(tw, "Latest:", uv.Latest)
		row(tw, "Upgrade:", uv.Upgrade)
	})
}
