// Package wallet provides the service layer between the node API and the
// views the gateway and CLI render.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/amount"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/ardanlabs/skywallet/foundation/semver"
	"go.uber.org/zap"
)

// ErrNoLatestVersion is returned when an upgrade check has nothing to
// compare against.
var ErrNoLatestVersion = errors.New("latest version not configured")

// Node is the set of node calls the service layer needs.
type Node interface {
	Outputs(ctx context.Context, addrs ...string) (nodeclient.OutputSet, error)
	Balance(ctx context.Context, addrs ...string) (nodeclient.AddressBalanceResponse, error)
	BlockchainProgress(ctx context.Context) (nodeclient.BlockchainProgress, error)
	PendingTransactions(ctx context.Context) ([]nodeclient.PendingTxn, error)
	Version(ctx context.Context) (nodeclient.BuildInfo, error)
}

// Config holds what the Core needs to be constructed.
type Config struct {
	Log           *zap.SugaredLogger
	Node          Node
	Book          *addressbook.Book
	LatestVersion string
}

// Core manages the set of wallet view operations.
type Core struct {
	log    *zap.SugaredLogger
	node   Node
	book   *addressbook.Book
	latest string
}

// NewCore constructs a core for wallet views.
func NewCore(cfg Config) *Core {
	book := cfg.Book
	if book == nil {
		book, _ = addressbook.New("")
	}

	return &Core{
		log:    cfg.Log,
		node:   cfg.Node,
		book:   book,
		latest: cfg.LatestVersion,
	}
}

// UnspentOutputs returns the unspent outputs of the addresses, newest block
// first.
func (c *Core) UnspentOutputs(ctx context.Context, addrs ...string) ([]UnspentOutput, error) {
	set, err := c.node.Outputs(ctx, addrs...)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}

	outs := make([]UnspentOutput, 0, len(set.HeadOutputs))
	for _, o := range set.HeadOutputs {
		droplets, err := amount.ParseCoins(o.Coins)
		if err != nil {
			return nil, fmt.Errorf("output %s: coins %q: %w", o.Hash, o.Coins, err)
		}

		outs = append(outs, UnspentOutput{
			Hash:            o.Hash,
			Address:         o.Address,
			Label:           c.book.Lookup(o.Address),
			SrcTx:           o.SrcTx,
			BlockSeq:        o.BkSeq,
			Time:            time.Unix(int64(o.Time), 0).UTC(),
			Droplets:        droplets,
			Coins:           amount.FormatCoins(droplets),
			Hours:           o.Hours,
			CalculatedHours: o.CalculatedHours,
		})
	}

	sort.SliceStable(outs, func(i, j int) bool {
		return outs[i].BlockSeq > outs[j].BlockSeq
	})

	return outs, nil
}

// SyncProgress returns the sync state of the node.
func (c *Core) SyncProgress(ctx context.Context) (SyncProgress, error) {
	bp, err := c.node.BlockchainProgress(ctx)
	if err != nil {
		return SyncProgress{}, fmt.Errorf("query progress: %w", err)
	}

	return toSyncProgress(bp), nil
}

func toSyncProgress(bp nodeclient.BlockchainProgress) SyncProgress {
	sp := SyncProgress{
		Current: bp.Current,
		Highest: bp.Highest,
		Peers:   len(bp.Peers),
		Percent: 100,
	}

	if bp.Highest > 0 && bp.Current < bp.Highest {
		sp.Percent = float64(bp.Current) / float64(bp.Highest) * 100
	}

	sp.Synchronized = bp.Current >= bp.Highest

	return sp
}

// PendingTransactions returns the unconfirmed transactions, most recently
// received first.
func (c *Core) PendingTransactions(ctx context.Context) ([]PendingTxn, error) {
	txs, err := c.node.PendingTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending: %w", err)
	}

	pending := make([]PendingTxn, 0, len(txs))
	for _, tx := range txs {
		var droplets uint64
		var hours uint64
		for _, o := range tx.Transaction.Outputs {
			d, err := amount.ParseCoins(o.Coins)
			if err != nil {
				return nil, fmt.Errorf("txn %s: coins %q: %w", tx.Transaction.Hash, o.Coins, err)
			}
			droplets += d
			hours += o.Hours
		}

		pending = append(pending, PendingTxn{
			TxID:      tx.Transaction.Hash,
			Received:  parseTime(tx.Received),
			Checked:   parseTime(tx.Checked),
			Announced: parseTime(tx.Announced),
			IsValid:   tx.IsValid,
			Outputs:   len(tx.Transaction.Outputs),
			Droplets:  droplets,
			Coins:     amount.FormatCoins(droplets),
			Hours:     hours,
		})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].Received.After(pending[j].Received)
	})

	return pending, nil
}

// AddressBook returns the address book entries with their balances.
func (c *Core) AddressBook(ctx context.Context) ([]AddressEntry, error) {
	addrs := c.book.Addresses()
	if len(addrs) == 0 {
		return []AddressEntry{}, nil
	}

	bal, err := c.node.Balance(ctx, addrs...)
	if err != nil {
		return nil, fmt.Errorf("query balance: %w", err)
	}

	entries := make([]AddressEntry, len(addrs))
	for i, addr := range addrs {
		pair := bal.Addresses[addr]
		entries[i] = AddressEntry{
			Address:   addr,
			Label:     c.book.Lookup(addr),
			Confirmed: toBalance(pair.Confirmed),
			Predicted: toBalance(pair.Predicted),
		}
	}

	return entries, nil
}

// CheckUpgrade compares the node release against the latest release.
func (c *Core) CheckUpgrade(ctx context.Context) (Upgrade, error) {
	return c.CheckUpgradeTo(ctx, c.latest)
}

// CheckUpgradeTo compares the node release against the specified release.
func (c *Core) CheckUpgradeTo(ctx context.Context, latest string) (Upgrade, error) {
	if latest == "" {
		return Upgrade{}, ErrNoLatestVersion
	}

	bi, err := c.node.Version(ctx)
	if err != nil {
		return Upgrade{}, fmt.Errorf("query version: %w", err)
	}

	upgrade, err := semver.ShouldUpgrade(bi.Version, latest)
	if err != nil {
		return Upgrade{}, fmt.Errorf("compare versions: %w", err)
	}

	u := Upgrade{
		Current: bi.Version,
		Latest:  latest,
		Upgrade: upgrade,
	}

	return u, nil
}

// =============================================================================

func toBalance(b nodeclient.Balance) Balance {
	return Balance{
		Droplets: b.Coins,
		Coins:    amount.FormatCoins(b.Coins),
		Hours:    b.Hours,
	}
}

// parseTime accepts the RFC3339 timestamps the node writes. A value that
// does not parse is reported as the zero time.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
