package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func newNode(t *testing.T, routes map[string]string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "404 Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// resetFlags puts every flag back to its default so each run starts clean.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			sv.Replace(nil)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(args ...string) (string, error) {
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func Test_Status(t *testing.T) {
	t.Log("Given the need to print the node status.")
	{
		srv := newNode(t, map[string]string{
			"/blockchain/metadata": `{"head":{"seq":10,"block_hash":"abc","timestamp":1700000000},"unspents":5,"unconfirmed":1}`,
			"/blockchain/progress": `{"current":10,"highest":20,"peers":[{"address":"1.2.3.4:6000","height":20}]}`,
		})

		out, err := run("status", "--url", srv.URL, "--output", "json")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to run the command: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to run the command.", success)

		var sv statusView
		if err := json.Unmarshal([]byte(out), &sv); err != nil {
			t.Fatalf("\t%s\tShould be able to decode the output: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to decode the output.", success)

		if sv.Seq != 10 || sv.Percent != 50 || sv.Synchronized || sv.Peers != 1 {
			t.Logf("\t\tgot: %+v", sv)
			t.Fatalf("\t%s\tShould report the head and the progress.", failed)
		}
		t.Logf("\t%s\tShould report the head and the progress.", success)
	}
}

func Test_Upgrade(t *testing.T) {
	t.Log("Given a node running a release candidate.")
	{
		srv := newNode(t, map[string]string{
			"/version": `{"version":"0.25.0-rc1"}`,
		})

		out, err := run("upgrade", "--url", srv.URL, "--output", "yaml", "--latest", "0.25.0")
		if err != nil {
			t.Fatalf("\t%s\tShould be able to run the command: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to run the command.", success)

		if !strings.Contains(out, "upgrade: true") {
			t.Logf("\t\tgot: %s", out)
			t.Fatalf("\t%s\tShould report an upgrade to the release.", failed)
		}
		t.Logf("\t%s\tShould report an upgrade to the release.", success)
	}
}

func Test_BalanceFromBook(t *testing.T) {
	t.Log("Given an address book and no addresses on the command line.")
	{
		a, err := address.New(bytes.Repeat([]byte{7}, 20), 0)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct an address: %v", failed, err)
		}
		addr := a.String()

		book := filepath.Join(t.TempDir(), "book.yaml")
		if err := addressbook.Save(book, []addressbook.Entry{{Address: addr, Label: "savings"}}); err != nil {
			t.Fatalf("\t%s\tShould be able to save the address book: %v", failed, err)
		}

		srv := newNode(t, map[string]string{
			"/balance": `{"confirmed":{"coins":1500000,"hours":12},"predicted":{"coins":1500000,"hours":12},"addresses":{"` + addr + `":{"confirmed":{"coins":1500000,"hours":12},"predicted":{"coins":1500000,"hours":12}}}}`,
		})

		out, err := run("balance", "--url", srv.URL, "--output", "table", "--book", book)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to run the command: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to run the command.", success)

		if !strings.Contains(out, "savings") || !strings.Contains(out, "1.5") {
			t.Logf("\t\tgot: %s", out)
			t.Fatalf("\t%s\tShould print the labelled balance.", failed)
		}
		t.Logf("\t%s\tShould print the labelled balance.", success)
	}
}

func Test_Failures(t *testing.T) {
	srv := newNode(t, map[string]string{})

	type table struct {
		name string
		args []string
		msg  string
	}

	tt := []table{
		{name: "format", args: []string{"supply", "--url", srv.URL, "--output", "xml"}, msg: "unknown output format"},
		{name: "node", args: []string{"tx", "--url", srv.URL, "--output", "table", "--id", "abc"}, msg: "404 Not Found"},
		{name: "pending", args: []string{"pending", "--url", srv.URL + "/missing", "--output", "table"}, msg: "404"},
		{name: "blockboth", args: []string{"block", "--url", srv.URL, "--hash", "aa", "--seq", "3"}, msg: "exactly one of --hash or --seq"},
		{name: "blocknone", args: []string{"block", "--url", srv.URL}, msg: "exactly one of --hash or --seq"},
		{name: "blocksrange", args: []string{"blocks", "--url", srv.URL, "--start", "5", "--end", "2"}, msg: "before start"},
		{name: "txid", args: []string{"tx", "--url", srv.URL}, msg: "--id is required"},
		{name: "latest", args: []string{"upgrade", "--url", srv.URL}, msg: "--latest is required"},
		{name: "nobook", args: []string{"balance", "--url", srv.URL}, msg: "address book is empty"},
		{name: "badaddr", args: []string{"outputs", "--url", srv.URL, "-a", "nope"}, msg: "address \"nope\""},
	}

	t.Log("Given the need to report command failures.")
	{
		for _, tst := range tt {
			f := func(t *testing.T) {
				_, err := run(tst.args...)
				if err == nil || !strings.Contains(err.Error(), tst.msg) {
					t.Fatalf("\t%s\tTest %s:\tShould fail with %q, got %v.", failed, tst.name, tst.msg, err)
				}
				t.Logf("\t%s\tTest %s:\tShould fail with %q.", success, tst.name, tst.msg)
			}

			t.Run(tst.name, f)
		}
	}
}
