package wallet

import "time"

// UnspentOutput is an unspent output prepared for display.
type UnspentOutput struct {
	Hash            string
	Address         string
	Label           string
	SrcTx           string
	BlockSeq        uint64
	Time            time.Time
	Droplets        uint64
	Coins           string
	Hours           uint64
	CalculatedHours uint64
}

// SyncProgress describes how far the node is in syncing the chain.
type SyncProgress struct {
	Current      uint64
	Highest      uint64
	Percent      float64
	Synchronized bool
	Peers        int
}

// PendingTxn is an unconfirmed transaction prepared for display.
type PendingTxn struct {
	TxID      string
	Received  time.Time
	Checked   time.Time
	Announced time.Time
	IsValid   bool
	Outputs   int
	Droplets  uint64
	Coins     string
	Hours     uint64
}

// Balance is an amount of droplets and coin hours.
type Balance struct {
	Droplets uint64
	Coins    string
	Hours    uint64
}

// AddressEntry is an address book entry with its balances.
type AddressEntry struct {
	Address   string
	Label     string
	Confirmed Balance
	Predicted Balance
}

// Upgrade reports whether the node release is behind the latest release.
type Upgrade struct {
	Current string
	Latest  string
	Upgrade bool
}
