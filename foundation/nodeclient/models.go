package nodeclient

// BlockHeader represents the header of a block as the node reports it.
type BlockHeader struct {
	Seq               uint64 `json:"seq"`
	BlockHash         string `json:"block_hash"`
	PreviousBlockHash string `json:"previous_block_hash"`
	Timestamp         int64  `json:"timestamp"`
	Fee               uint64 `json:"fee"`
	Version           uint32 `json:"version"`
	BodyHash          string `json:"tx_body_hash"`
	UxHash            string `json:"ux_hash"`
}

// BlockBody holds the transactions of a block.
type BlockBody struct {
	Transactions []Transaction `json:"txns"`
}

// Block represents a full block.
type Block struct {
	Header BlockHeader `json:"header"`
	Body   BlockBody   `json:"body"`
	Size   int         `json:"size"`
}

// Blocks is the reply for a block range query.
type Blocks struct {
	Blocks []Block `json:"blocks"`
}

// TransactionOutput is an output created by a transaction.
type TransactionOutput struct {
	Hash    string `json:"uxid"`
	Address string `json:"dst"`
	Coins   string `json:"coins"`
	Hours   uint64 `json:"hours"`
}

// Transaction represents a transaction inside a block or the mempool.
type Transaction struct {
	Length    uint32              `json:"length"`
	Type      uint8               `json:"type"`
	Hash      string              `json:"txid"`
	InnerHash string              `json:"inner_hash"`
	Timestamp uint64              `json:"timestamp,omitempty"`
	Sigs      []string            `json:"sigs"`
	Inputs    []string            `json:"inputs"`
	Outputs   []TransactionOutput `json:"outputs"`
}

// TransactionStatus describes where a transaction is in its life cycle.
type TransactionStatus struct {
	Confirmed   bool   `json:"confirmed"`
	Unconfirmed bool   `json:"unconfirmed"`
	Height      uint64 `json:"height"`
	BlockSeq    uint64 `json:"block_seq"`
}

// TransactionResult is the reply for a single transaction lookup.
type TransactionResult struct {
	Status      TransactionStatus `json:"status"`
	Time        uint64            `json:"time"`
	Transaction Transaction       `json:"txn"`
}

// TransactionInput is a spent output referenced by an address transaction.
type TransactionInput struct {
	Hash            string `json:"uxid"`
	Address         string `json:"owner"`
	Coins           string `json:"coins"`
	Hours           uint64 `json:"hours"`
	CalculatedHours uint64 `json:"calculated_hours"`
}

// AddressTransaction is a transaction touching an address, with resolved
// inputs.
type AddressTransaction struct {
	Status    TransactionStatus   `json:"status"`
	Length    uint32              `json:"length"`
	Type      uint8               `json:"type"`
	Hash      string              `json:"txid"`
	InnerHash string              `json:"inner_hash"`
	Timestamp uint64              `json:"timestamp,omitempty"`
	Sigs      []string            `json:"sigs"`
	Inputs    []TransactionInput  `json:"inputs"`
	Outputs   []TransactionOutput `json:"outputs"`
}

// UnspentOutput is a spendable output owned by an address.
type UnspentOutput struct {
	Hash            string `json:"hash"`
	Time            uint64 `json:"time"`
	BkSeq           uint64 `json:"block_seq"`
	SrcTx           string `json:"src_tx"`
	Address         string `json:"address"`
	Coins           string `json:"coins"`
	Hours           uint64 `json:"hours"`
	CalculatedHours uint64 `json:"calculated_hours"`
}

// OutputSet is the reply of the outputs query.
type OutputSet struct {
	HeadOutputs     []UnspentOutput `json:"head_outputs"`
	OutgoingOutputs []UnspentOutput `json:"outgoing_outputs"`
	IncomingOutputs []UnspentOutput `json:"incoming_outputs"`
}

// UxOut is an output by id, spent or not. Coins are in droplets.
type UxOut struct {
	Uxid          string `json:"uxid"`
	Time          uint64 `json:"time"`
	SrcBlockSeq   uint64 `json:"src_block_seq"`
	SrcTx         string `json:"src_tx"`
	OwnerAddress  string `json:"owner_address"`
	Coins         uint64 `json:"coins"`
	Hours         uint64 `json:"hours"`
	SpentBlockSeq uint64 `json:"spent_block_seq"`
	SpentTxid     string `json:"spent_tx"`
}

// Balance is an amount of coins, in droplets, and coin hours.
type Balance struct {
	Coins uint64 `json:"coins"`
	Hours uint64 `json:"hours"`
}

// BalancePair holds the confirmed and predicted balance.
type BalancePair struct {
	Confirmed Balance `json:"confirmed"`
	Predicted Balance `json:"predicted"`
}

// AddressBalanceResponse is the reply of the balance query.
type AddressBalanceResponse struct {
	Confirmed Balance                `json:"confirmed"`
	Predicted Balance                `json:"predicted"`
	Addresses map[string]BalancePair `json:"addresses"`
}

// CoinSupply describes the coin distribution.
type CoinSupply struct {
	CurrentSupply         string   `json:"current_supply"`
	TotalSupply           string   `json:"total_supply"`
	MaxSupply             string   `json:"max_supply"`
	CurrentCoinHourSupply string   `json:"current_coinhour_supply"`
	TotalCoinHourSupply   string   `json:"total_coinhour_supply"`
	UnlockedAddresses     []string `json:"unlocked_distribution_addresses"`
	LockedAddresses       []string `json:"locked_distribution_addresses"`
}

// BlockchainMetadata describes the head of the chain.
type BlockchainMetadata struct {
	Head        BlockHeader `json:"head"`
	Unspents    uint64      `json:"unspents"`
	Unconfirmed uint64      `json:"unconfirmed"`
}

// PeerBlockchainHeight is the height a connected peer reports.
type PeerBlockchainHeight struct {
	Address string `json:"address"`
	Height  uint64 `json:"height"`
}

// BlockchainProgress reports how far the node is in syncing the chain.
type BlockchainProgress struct {
	Current uint64                 `json:"current"`
	Highest uint64                 `json:"highest"`
	Peers   []PeerBlockchainHeight `json:"peers"`
}

// PendingTxn is an unconfirmed transaction held by the node.
type PendingTxn struct {
	Transaction Transaction `json:"transaction"`
	Received    string      `json:"received"`
	Checked     string      `json:"checked"`
	Announced   string      `json:"announced"`
	IsValid     bool        `json:"is_valid"`
}

// BuildInfo is the version information of the node.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Branch  string `json:"branch"`
}

// WalletMeta is the metadata of a wallet held by the node.
type WalletMeta struct {
	Coin       string `json:"coin"`
	Filename   string `json:"filename"`
	Label      string `json:"label"`
	Type       string `json:"type"`
	Version    string `json:"version"`
	CryptoType string `json:"crypto_type"`
	Timestamp  int64  `json:"timestamp"`
	Encrypted  bool   `json:"encrypted"`
}

// WalletEntry is an address of a wallet.
type WalletEntry struct {
	Address   string `json:"address"`
	PublicKey string `json:"public_key"`
}

// Wallet is the reply of the wallet create call.
type Wallet struct {
	Meta    WalletMeta    `json:"meta"`
	Entries []WalletEntry `json:"entries"`
}
