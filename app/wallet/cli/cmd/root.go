// Package cmd contains the wallet CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	nodeURL  string
	output   string
	bookFile string
	timeout  time.Duration
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&nodeURL, "url", "u", "http://127.0.0.1:6420", "Url of the node api.")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", formatTable, "Output format: table, json or yaml.")
	rootCmd.PersistentFlags().StringVarP(&bookFile, "book", "b", "", "Path to the address book file.")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for each node call.")
}

var rootCmd = &cobra.Command{
	Use:           "wallet",
	Short:         "Query a node through its HTTP API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch output {
		case formatTable, formatJSON, formatYAML:
			return nil
		}
		return fmt.Errorf("unknown output format %q", output)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

// =============================================================================

func newClient() *nodeclient.Client {
	return nodeclient.New(nodeURL, nodeclient.WithTimeout(timeout))
}

func newCore(client *nodeclient.Client, latest string) (*wallet.Core, error) {
	book, err := addressbook.New(bookFile)
	if err != nil {
		return nil, fmt.Errorf("loading address book: %w", err)
	}

	cfg := wallet.Config{
		Log:           zap.NewNop().Sugar(),
		Node:          client,
		Book:          book,
		LatestVersion: latest,
	}

	return wallet.NewCore(cfg), nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}
