package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/skywallet/app/services/gateway/handlers"
	"github.com/ardanlabs/skywallet/business/core/wallet"
	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/ardanlabs/skywallet/foundation/events"
	"github.com/ardanlabs/skywallet/foundation/nodeclient"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// walletNode answers the calls the view routes make.
func walletNode(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/outputs", func(w http.ResponseWriter, r *http.Request) {
		addr := r.URL.Query().Get("addrs")
		fmt.Fprintf(w, `{"head_outputs":[`+
			`{"hash":"old","time":1700000000,"block_seq":3,"address":%q,"coins":"1","hours":1,"calculated_hours":5},`+
			`{"hash":"new","time":1700000100,"block_seq":9,"address":%q,"coins":"2.5","hours":2,"calculated_hours":1234}],`+
			`"outgoing_outputs":[],"incoming_outputs":[]}`, addr, addr)
	})
	mux.HandleFunc("/pendingTxs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[`+
			`{"transaction":{"txid":"older","outputs":[{"coins":"1","hours":1}]},"received":"2024-01-01T00:00:00Z","is_valid":true},`+
			`{"transaction":{"txid":"newer","outputs":[{"coins":"2","hours":3}]},"received":"2024-02-01T00:00:00Z","is_valid":true}]`)
	})
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		var pairs []string
		for _, addr := range strings.Split(r.URL.Query().Get("addrs"), ",") {
			pairs = append(pairs, fmt.Sprintf(`%q:{"confirmed":{"coins":1500000,"hours":1200},"predicted":{"coins":1000000,"hours":1300}}`, addr))
		}
		fmt.Fprintf(w, `{"confirmed":{"coins":0,"hours":0},"predicted":{"coins":0,"hours":0},"addresses":{%s}}`, strings.Join(pairs, ","))
	})
	mux.HandleFunc("/blockchain/progress", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current":10,"highest":10,"peers":[]}`)
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"version":"0.24.1"}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func walletAddress(t *testing.T, b byte) string {
	a, err := address.New(bytes.Repeat([]byte{b}, 20), 0)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct an address: %v", failed, err)
	}
	return a.String()
}

// muxConfig builds the gateway configuration against the node at host.
func muxConfig(t *testing.T, host string, entries ...addressbook.Entry) handlers.MuxConfig {
	path := filepath.Join(t.TempDir(), "book.yaml")
	if err := addressbook.Save(path, entries); err != nil {
		t.Fatalf("\t%s\tShould be able to save the address book: %v", failed, err)
	}
	book, err := addressbook.New(path)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to load the address book: %v", failed, err)
	}

	log := zap.NewNop().Sugar()
	client := nodeclient.New(host)

	return handlers.MuxConfig{
		Log:  log,
		Node: client,
		Core: wallet.NewCore(wallet.Config{Log: log, Node: client, Book: book, LatestVersion: "0.25.0"}),
		Evts: events.New(),
	}
}

func get(t *testing.T, mux http.Handler, path string, v any) int {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code == http.StatusOK && v != nil {
		if err := json.NewDecoder(w.Body).Decode(v); err != nil {
			t.Fatalf("\t%s\tShould be able to decode %s: %v", failed, path, err)
		}
	}

	return w.Code
}

func Test_ViewReplies(t *testing.T) {
	srv := walletNode(t)
	addr := walletAddress(t, 5)
	mux := handlers.APIMux(muxConfig(t, srv.URL, addressbook.Entry{Address: addr, Label: "savings"}))

	t.Log("Given the need to serve wallet views from node data.")
	{
		var outs []struct {
			Hash            string `json:"hash"`
			Label           string `json:"label"`
			Coins           string `json:"coins"`
			Droplets        uint64 `json:"droplets"`
			CalculatedHours string `json:"calculated_hours"`
		}
		if code := get(t, mux, "/v1/outputs/"+addr, &outs); code != http.StatusOK {
			t.Fatalf("\t%s\tShould get the outputs, got %d.", failed, code)
		}
		if len(outs) != 2 || outs[0].Hash != "new" || outs[0].Label != "savings" || outs[0].Droplets != 2500000 || outs[0].CalculatedHours != "1,234" {
			t.Logf("\t\tgot: %+v", outs)
			t.Fatalf("\t%s\tShould get labelled outputs, newest block first.", failed)
		}
		t.Logf("\t%s\tShould get labelled outputs, newest block first.", success)

		var pending []struct {
			TxID  string `json:"txid"`
			Coins string `json:"coins"`
		}
		if code := get(t, mux, "/v1/pending", &pending); code != http.StatusOK {
			t.Fatalf("\t%s\tShould get the pending transactions, got %d.", failed, code)
		}
		if len(pending) != 2 || pending[0].TxID != "newer" || pending[0].Coins != "2" {
			t.Logf("\t\tgot: %+v", pending)
			t.Fatalf("\t%s\tShould get pending transactions, newest first.", failed)
		}
		t.Logf("\t%s\tShould get pending transactions, newest first.", success)

		var entries []struct {
			Address   string `json:"address"`
			Label     string `json:"label"`
			Confirmed struct {
				Coins string `json:"coins"`
				Hours string `json:"hours"`
			} `json:"confirmed"`
		}
		if code := get(t, mux, "/v1/addresses", &entries); code != http.StatusOK {
			t.Fatalf("\t%s\tShould get the address book, got %d.", failed, code)
		}
		if len(entries) != 1 || entries[0].Label != "savings" || entries[0].Confirmed.Coins != "1.5" || entries[0].Confirmed.Hours != "1,200" {
			t.Logf("\t\tgot: %+v", entries)
			t.Fatalf("\t%s\tShould get the address book with balances.", failed)
		}
		t.Logf("\t%s\tShould get the address book with balances.", success)

		var u struct {
			Current string `json:"current"`
			Upgrade bool   `json:"upgrade"`
		}
		if code := get(t, mux, "/v1/upgrade", &u); code != http.StatusOK {
			t.Fatalf("\t%s\tShould get the upgrade check, got %d.", failed, code)
		}
		if u.Current != "0.24.1" || !u.Upgrade {
			t.Logf("\t\tgot: %+v", u)
			t.Fatalf("\t%s\tShould report an upgrade to the latest release.", failed)
		}
		t.Logf("\t%s\tShould report an upgrade to the latest release.", success)
	}
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func Test_Events(t *testing.T) {
	node := walletNode(t)
	cfg := muxConfig(t, node.URL)
	cfg.CORSOrigins = []string{"http://gui.local"}

	srv := httptest.NewServer(handlers.APIMux(cfg))
	defer srv.Close()

	t.Log("Given a client subscribed to sync progress events.")
	{
		cfg.Evts.Send([]byte(`{"current":10,"highest":10}`))

		h := http.Header{"Origin": {"http://gui.local"}}
		c, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/v1/events"), h)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to open the websocket: %v", failed, err)
		}
		defer c.Close()
		t.Logf("\t%s\tShould be able to open the websocket.", success)

		_, msg, err := c.ReadMessage()
		if err != nil {
			t.Fatalf("\t%s\tShould be able to read the latest snapshot: %v", failed, err)
		}
		if string(msg) != `{"current":10,"highest":10}` {
			t.Fatalf("\t%s\tShould get the latest snapshot, got %s.", failed, msg)
		}
		t.Logf("\t%s\tShould get the latest snapshot.", success)

		h = http.Header{"Origin": {"http://evil.local"}}
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/v1/events"), h)
		if err == nil || resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("\t%s\tShould refuse an origin that is not allowed: %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse an origin that is not allowed.", success)
	}
}

func Test_StreamsDoNotThrottle(t *testing.T) {
	node := walletNode(t)
	cfg := muxConfig(t, node.URL)
	cfg.MaxInFlight = 2
	cfg.MaxStreams = 3

	srv := httptest.NewServer(handlers.APIMux(cfg))
	defer srv.Close()

	t.Log("Given open websockets up to the request limit.")
	{
		for i := 0; i < 3; i++ {
			c, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/v1/events"), nil)
			if err != nil {
				t.Fatalf("\t%s\tShould be able to open websocket %d: %v", failed, i, err)
			}
			defer c.Close()
		}
		t.Logf("\t%s\tShould be able to open the websockets.", success)

		resp, err := http.Get(srv.URL + "/v1/sync")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to call the sync view: %v", failed, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("\t%s\tShould still serve requests, got %d.", failed, resp.StatusCode)
		}
		t.Logf("\t%s\tShould still serve requests.", success)

		_, resp, err = websocket.DefaultDialer.Dial(wsURL(srv, "/v1/events"), nil)
		if err == nil || resp == nil || resp.StatusCode != http.StatusTooManyRequests {
			t.Fatalf("\t%s\tShould refuse a websocket over the stream limit: %v", failed, err)
		}
		t.Logf("\t%s\tShould refuse a websocket over the stream limit.", success)
	}
}

func Test_GUI(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>wallet</html>"), 0600); err != nil {
		t.Fatalf("\t%s\tShould be able to write the index: %v", failed, err)
	}
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('wallet')"), 0600); err != nil {
		t.Fatalf("\t%s\tShould be able to write an asset: %v", failed, err)
	}

	cfg := muxConfig(t, "http://127.0.0.1:1")
	cfg.AssetsDir = dir
	mux := handlers.APIMux(cfg)

	type table struct {
		name   string
		path   string
		status int
		body   string
	}

	tt := []table{
		{name: "index", path: "/", status: http.StatusOK, body: "<html>wallet</html>"},
		{name: "asset", path: "/assets/app.js", status: http.StatusOK, body: "console.log('wallet')"},
		{name: "missing", path: "/assets/none.js", status: http.StatusNotFound},
	}

	t.Log("Given the need to serve the wallet GUI.")
	{
		for _, tst := range tt {
			f := func(t *testing.T) {
				r := httptest.NewRequest(http.MethodGet, tst.path, nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, r)

				if w.Code != tst.status {
					t.Fatalf("\t%s\tTest %s:\tShould get %d, got %d.", failed, tst.name, tst.status, w.Code)
				}
				if tst.body != "" && w.Body.String() != tst.body {
					t.Fatalf("\t%s\tTest %s:\tShould get the file, got %q.", failed, tst.name, w.Body.String())
				}
				t.Logf("\t%s\tTest %s:\tShould serve %s.", success, tst.name, tst.path)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_Readiness(t *testing.T) {
	node := walletNode(t)
	log := zap.NewNop().Sugar()

	type table struct {
		name    string
		host    string
		status  int
		version string
	}

	tt := []table{
		{name: "ready", host: node.URL, status: http.StatusOK, version: "0.24.1"},
		{name: "down", host: "http://127.0.0.1:1", status: http.StatusInternalServerError},
	}

	t.Log("Given the need to report readiness.")
	{
		for _, tst := range tt {
			f := func(t *testing.T) {
				mux := handlers.DebugMux("test", log, nodeclient.New(tst.host))

				r := httptest.NewRequest(http.MethodGet, "/debug/readiness", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, r)

				if w.Code != tst.status {
					t.Fatalf("\t%s\tTest %s:\tShould get %d, got %d.", failed, tst.name, tst.status, w.Code)
				}
				t.Logf("\t%s\tTest %s:\tShould get %d.", success, tst.name, tst.status)

				var data struct {
					NodeVersion string `json:"node_version"`
				}
				if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
					t.Fatalf("\t%s\tTest %s:\tShould be able to decode the reply: %v", failed, tst.name, err)
				}
				if data.NodeVersion != tst.version {
					t.Fatalf("\t%s\tTest %s:\tShould report node version %q, got %q.", failed, tst.name, tst.version, data.NodeVersion)
				}
				t.Logf("\t%s\tTest %s:\tShould report the node version.", success, tst.name)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_FormBodyLimit(t *testing.T) {
	n := node{}
	srv := httptest.NewServer(&n)
	defer srv.Close()

	mux := newMux(srv.URL)

	t.Log("Given a wallet form larger than the gateway accepts.")
	{
		body := "seed=" + strings.Repeat("a", 1<<20)
		r := httptest.NewRequest(http.MethodPost, "/api/wallet/create", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("\t%s\tShould respond with a 413, got %d.", failed, w.Code)
		}
		t.Logf("\t%s\tShould respond with a 413.", success)

		if path, _, _ := n.last(); path != "" {
			t.Fatalf("\t%s\tShould not call the node, got a call to %s.", failed, path)
		}
		t.Logf("\t%s\tShould not call the node.", success)
	}
}
