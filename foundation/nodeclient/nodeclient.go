// Package nodeclient provides a client for the HTTP API of a full node. The
// node owns the chain, the wallets and the signing keys; this package only
// speaks its JSON contract.
package nodeclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// maxBody caps the size of a reply read into memory.
const maxBody = 32 << 20

// APIError is returned when the node replies with a status outside of 2xx.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (ae *APIError) Error() string {
	return fmt.Sprintf("node: %d %s", ae.Status, ae.Message)
}

// GetAPIError returns the APIError held by err, or nil.
func GetAPIError(err error) *APIError {
	var ae *APIError
	if !errors.As(err, &ae) {
		return nil
	}
	return ae
}

// Response is a raw node reply.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// OK reports whether the node accepted the request.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// defaultTimeout applies when neither an http client nor a timeout is given.
const defaultTimeout = 10 * time.Second

// options holds the settings collected from Option values.
type options struct {
	http    *http.Client
	timeout time.Duration
}

// Option changes how a Client is constructed.
type Option func(*options)

// WithHTTPClient sets the http client used for node calls. The client is
// copied, so later options never change the caller's value.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.http = hc
	}
}

// WithTimeout sets the timeout for each node call.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// Client talks to a single node.
type Client struct {
	host string
	http *http.Client
}

// New constructs a client for the node at host, e.g. http://127.0.0.1:6420.
func New(host string, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	hc := http.Client{Timeout: defaultTimeout}
	if o.http != nil {
		hc = *o.http
	}
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}

	c := Client{
		host: strings.TrimSuffix(host, "/"),
		http: &hc,
	}

	return &c
}

// Host returns the node host this client calls.
func (c *Client) Host() string {
	return c.host
}

// =============================================================================

// Forward sends a request to the node and returns the reply as is. An error
// is only returned when no reply was received.
func (c *Client) Forward(ctx context.Context, method string, path string, query url.Values, body io.Reader, contentType string) (Response, error) {
	u := c.host + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("calling node %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Response{}, fmt.Errorf("reading node reply: %w", err)
	}

	r := Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}

	return r, nil
}

// send performs the call and decodes a successful reply into dataRecv.
func (c *Client) send(ctx context.Context, method string, path string, query url.Values, form url.Values, dataRecv any) error {
	var body io.Reader
	var contentType string
	if form != nil {
		body = strings.NewReader(form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	resp, err := c.Forward(ctx, method, path, query, body, contentType)
	if err != nil {
		return err
	}

	if !resp.OK() {
		return &APIError{
			Status:  resp.Status,
			Message: strings.TrimSpace(string(resp.Body)),
		}
	}

	if dataRecv == nil || resp.Status == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(resp.Body, dataRecv); err != nil {
		return fmt.Errorf("decoding node reply for %s: %w", path, err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dataRecv any) error {
	return c.send(ctx, http.MethodGet, path, query, nil, dataRecv)
}

// =============================================================================

// Blocks returns the blocks in the inclusive sequence range.
func (c *Client) Blocks(ctx context.Context, start uint64, end uint64) ([]Block, error) {
	q := url.Values{}
	q.Set("start", strconv.FormatUint(start, 10))
	q.Set("end", strconv.FormatUint(end, 10))

	var blocks Blocks
	if err := c.get(ctx, "/blocks", q, &blocks); err != nil {
		return nil, err
	}

	return blocks.Blocks, nil
}

// LastBlocks returns the n most recent blocks.
func (c *Client) LastBlocks(ctx context.Context, n uint64) ([]Block, error) {
	q := url.Values{}
	q.Set("num", strconv.FormatUint(n, 10))

	var blocks Blocks
	if err := c.get(ctx, "/last_blocks", q, &blocks); err != nil {
		return nil, err
	}

	return blocks.Blocks, nil
}

// BlockByHash returns the block with the specified hash.
func (c *Client) BlockByHash(ctx context.Context, hash string) (Block, error) {
	q := url.Values{}
	q.Set("hash", hash)

	var block Block
	if err := c.get(ctx, "/block", q, &block); err != nil {
		return Block{}, err
	}

	return block, nil
}

// BlockBySeq returns the block at the specified sequence.
func (c *Client) BlockBySeq(ctx context.Context, seq uint64) (Block, error) {
	q := url.Values{}
	q.Set("seq", strconv.FormatUint(seq, 10))

	var block Block
	if err := c.get(ctx, "/block", q, &block); err != nil {
		return Block{}, err
	}

	return block, nil
}

// Outputs returns the output set for the specified addresses.
func (c *Client) Outputs(ctx context.Context, addrs ...string) (OutputSet, error) {
	q := url.Values{}
	q.Set("addrs", strings.Join(addrs, ","))

	var outs OutputSet
	if err := c.get(ctx, "/outputs", q, &outs); err != nil {
		return OutputSet{}, err
	}

	return outs, nil
}

// UxOut returns the output with the specified id.
func (c *Client) UxOut(ctx context.Context, uxid string) (UxOut, error) {
	q := url.Values{}
	q.Set("uxid", uxid)

	var ux UxOut
	if err := c.get(ctx, "/uxout", q, &ux); err != nil {
		return UxOut{}, err
	}

	return ux, nil
}

// Transaction returns the transaction with the specified id.
func (c *Client) Transaction(ctx context.Context, txid string) (TransactionResult, error) {
	q := url.Values{}
	q.Set("txid", txid)

	var tx TransactionResult
	if err := c.get(ctx, "/transaction", q, &tx); err != nil {
		return TransactionResult{}, err
	}

	return tx, nil
}

// AddressTransactions returns the transactions touching an address.
func (c *Client) AddressTransactions(ctx context.Context, addr string) ([]AddressTransaction, error) {
	q := url.Values{}
	q.Set("address", addr)

	var txs []AddressTransaction
	if err := c.get(ctx, "/explorer/address", q, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// Balance returns the balance of the specified addresses.
func (c *Client) Balance(ctx context.Context, addrs ...string) (AddressBalanceResponse, error) {
	q := url.Values{}
	q.Set("addrs", strings.Join(addrs, ","))

	var bal AddressBalanceResponse
	if err := c.get(ctx, "/balance", q, &bal); err != nil {
		return AddressBalanceResponse{}, err
	}

	return bal, nil
}

// CoinSupply returns the coin distribution.
func (c *Client) CoinSupply(ctx context.Context) (CoinSupply, error) {
	var cs CoinSupply
	if err := c.get(ctx, "/coinSupply", nil, &cs); err != nil {
		return CoinSupply{}, err
	}

	return cs, nil
}

// BlockchainMetadata returns the head of the chain.
func (c *Client) BlockchainMetadata(ctx context.Context) (BlockchainMetadata, error) {
	var md BlockchainMetadata
	if err := c.get(ctx, "/blockchain/metadata", nil, &md); err != nil {
		return BlockchainMetadata{}, err
	}

	return md, nil
}

// BlockchainProgress returns the sync progress of the node.
func (c *Client) BlockchainProgress(ctx context.Context) (BlockchainProgress, error) {
	var bp BlockchainProgress
	if err := c.get(ctx, "/blockchain/progress", nil, &bp); err != nil {
		return BlockchainProgress{}, err
	}

	return bp, nil
}

// PendingTransactions returns the unconfirmed transactions.
func (c *Client) PendingTransactions(ctx context.Context) ([]PendingTxn, error) {
	var txs []PendingTxn
	if err := c.get(ctx, "/pendingTxs", nil, &txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// Version returns the build information of the node.
func (c *Client) Version(ctx context.Context) (BuildInfo, error) {
	var bi BuildInfo
	if err := c.get(ctx, "/version", nil, &bi); err != nil {
		return BuildInfo{}, err
	}

	return bi, nil
}

// CreateWallet asks the node to create a wallet from a seed.
func (c *Client) CreateWallet(ctx context.Context, seed string, label string) (Wallet, error) {
	form := url.Values{}
	form.Set("seed", seed)
	form.Set("label", label)

	var w Wallet
	if err := c.send(ctx, http.MethodPost, "/wallet/create", nil, form, &w); err != nil {
		return Wallet{}, err
	}

	return w, nil
}

// UpdateWallet changes the label of a wallet.
func (c *Client) UpdateWallet(ctx context.Context, id string, label string) error {
	form := url.Values{}
	form.Set("id", id)
	form.Set("label", label)

	return c.send(ctx, http.MethodPost, "/wallet/update", nil, form, nil)
}
