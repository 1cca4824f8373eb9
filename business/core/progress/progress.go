// Package progress watches the sync progress of the node and publishes
// every change to event subscribers.
package progress

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/ardanlabs/skywallet/business/core/wallet"
)

// EventHandler defines a function that is called when events
// occur in the processing of the watcher.
type EventHandler func(v string, args ...any)

// Source provides the current sync progress.
type Source interface {
	SyncProgress(ctx context.Context) (wallet.SyncProgress, error)
}

// Publisher receives encoded snapshots.
type Publisher interface {
	Send(msg []byte)
}

// Snapshot is the document sent to subscribers.
type Snapshot struct {
	Current      uint64  `json:"current"`
	Highest      uint64  `json:"highest"`
	Percent      float64 `json:"percent"`
	Synchronized bool    `json:"synchronized"`
	Peers        int     `json:"peers"`
	Error        string  `json:"error,omitempty"`
}

// Config holds what the Watcher needs to be constructed.
type Config struct {
	Source    Source
	Publisher Publisher
	Interval  time.Duration
	Timeout   time.Duration
	EvHandler EventHandler
}

// Watcher polls the node on an interval.
type Watcher struct {
	source    Source
	publisher Publisher
	ticker    *time.Ticker
	timeout   time.Duration
	evHandler EventHandler
	wg        sync.WaitGroup
	shut      chan struct{}
	mu        sync.Mutex
	last      Snapshot
	hasLast   bool
}

// Run constructs a watcher, takes a first snapshot and starts polling.
func Run(cfg Config) *Watcher {
	interval := cfg.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = interval
	}

	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	w := Watcher{
		source:    cfg.Source,
		publisher: cfg.Publisher,
		ticker:    time.NewTicker(interval),
		timeout:   timeout,
		evHandler: ev,
		shut:      make(chan struct{}),
	}

	w.Poll()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.pollOperations()
	}()

	return &w
}

// Shutdown terminates the goroutine performing work.
func (w *Watcher) Shutdown() {
	w.evHandler("progress: shutdown: started")
	defer w.evHandler("progress: shutdown: completed")

	w.ticker.Stop()
	close(w.shut)
	w.wg.Wait()
}

// Poll takes a snapshot and publishes it if it differs from the last one.
// It reports whether a snapshot was published.
func (w *Watcher) Poll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var snap Snapshot
	sp, err := w.source.SyncProgress(ctx)
	switch {
	case err != nil:
		w.evHandler("progress: poll: ERROR: %s", err)
		snap = w.last
		snap.Error = "node unavailable"

	default:
		snap = Snapshot{
			Current:      sp.Current,
			Highest:      sp.Highest,
			Percent:      sp.Percent,
			Synchronized: sp.Synchronized,
			Peers:        sp.Peers,
		}
	}

	if w.hasLast && snap == w.last {
		return false
	}

	data, err := json.Marshal(snap)
	if err != nil {
		w.evHandler("progress: poll: marshal: ERROR: %s", err)
		return false
	}

	w.last = snap
	w.hasLast = true
	w.publisher.Send(data)

	w.evHandler("progress: poll: current[%d] highest[%d] synchronized[%t]", snap.Current, snap.Highest, snap.Synchronized)

	return true
}

// pollOperations handles polling until shutdown.
func (w *Watcher) pollOperations() {
	w.evHandler("progress: pollOperations: G started")
	defer w.evHandler("progress: pollOperations: G completed")

	for {
		select {
		case <-w.ticker.C:
			w.Poll()

		case <-w.shut:
			w.evHandler("progress: pollOperations: received shut signal")
			return
		}
	}
}
