package viewgrp

import (
	"time"

	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/foundation/amount"
)

type output struct {
	Hash            string    `json:"hash"`
	Address         string    `json:"address"`
	Label           string    `json:"label"`
	SrcTx           string    `json:"src_tx"`
	BlockSeq        uint64    `json:"block_seq"`
	Time            time.Time `json:"time"`
	Droplets        uint64    `json:"droplets"`
	Coins           string    `json:"coins"`
	Hours           uint64    `json:"hours"`
	CalculatedHours string    `json:"calculated_hours"`
}

func toOutputs(outs []wallet.UnspentOutput) []output {
	views := make([]output, len(outs))
	for i, o := range outs {
		views[i] = output{
			Hash:            o.Hash,
			Address:         o.Address,
			Label:           o.Label,
			SrcTx:           o.SrcTx,
			BlockSeq:        o.BlockSeq,
			Time:            o.Time,
			Droplets:        o.Droplets,
			Coins:           o.Coins,
			Hours:           o.Hours,
			CalculatedHours: amount.GroupDigits(o.CalculatedHours),
		}
	}
	return views
}

type syncProgress struct {
	Current      uint64  `json:"current"`
	Highest      uint64  `json:"highest"`
	Percent      float64 `json:"percent"`
	Synchronized bool    `json:"synchronized"`
	Peers        int     `json:"peers"`
}

type pendingTxn struct {
	TxID      string    `json:"txid"`
	Received  time.Time `json:"received"`
	Checked   time.Time `json:"checked"`
	Announced time.Time `json:"announced"`
	IsValid   bool      `json:"is_valid"`
	Outputs   int       `json:"outputs"`
	Coins     string    `json:"coins"`
	Hours     string    `json:"hours"`
}

func toPending(txs []wallet.PendingTxn) []pendingTxn {
	views := make([]pendingTxn, len(txs))
	for i, tx := range txs {
		views[i] = pendingTxn{
			TxID:      tx.TxID,
			Received:  tx.Received,
			Checked:   tx.Checked,
			Announced: tx.Announced,
			IsValid:   tx.IsValid,
			Outputs:   tx.Outputs,
			Coins:     tx.Coins,
			Hours:     amount.GroupDigits(tx.Hours),
		}
	}
	return views
}

type balance struct {
	Coins string `json:"coins"`
	Hours string `json:"hours"`
}

type addressEntry struct {
	Address   string  `json:"address"`
	Label     string  `json:"label"`
	Confirmed balance `json:"confirmed"`
	Predicted balance `json:"predicted"`
}

func toAddressEntries(entries []wallet.AddressEntry) []addressEntry {
	views := make([]addressEntry, len(entries))
	for i, e := range entries {
		views[i] = addressEntry{
			Address:   e.Address,
			Label:     e.Label,
			Confirmed: balance{Coins: e.Confirmed.Coins, Hours: amount.GroupDigits(e.Confirmed.Hours)},
			Predicted: balance{Coins: e.Predicted.Coins, Hours: amount.GroupDigits(e.Predicted.Hours)},
		}
	}
	return views
}

type upgrade struct {
	Current string `json:"current"`
	Latest  string `json:"latest"`
	Upgrade bool   `json:"upgrade"`
}

type addressParam struct {
	Address string `json:"address" validate:"required,skyaddr"`
}
