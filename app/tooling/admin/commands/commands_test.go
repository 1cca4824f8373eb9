package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Book(t *testing.T) {
	a, err := address.New(bytes.Repeat([]byte{3}, 20), 0)
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct an address: %v", failed, err)
	}
	path := filepath.Join(t.TempDir(), "book.yaml")

	t.Log("Given the need to maintain the address book.")
	{
		var buf bytes.Buffer
		if err := book(&buf, []string{"admin", "book", "add", a.String(), "cold"}, path); err != nil {
			t.Fatalf("\t%s\tShould be able to add an address: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to add an address.", success)

		ab, err := addressbook.New(path)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to load the saved book: %v", failed, err)
		}
		if ab.Lookup(a.String()) != "cold" {
			t.Fatalf("\t%s\tShould find the label in the saved book.", failed)
		}
		t.Logf("\t%s\tShould find the label in the saved book.", success)

		if err := book(&buf, []string{"admin", "book", "add", "nope", "bad"}, path); err == nil {
			t.Fatalf("\t%s\tShould reject an invalid address.", failed)
		}
		t.Logf("\t%s\tShould reject an invalid address.", success)

		buf.Reset()
		if err := book(&buf, []string{"admin", "book"}, path); err != nil || !strings.Contains(buf.String(), "cold") {
			t.Fatalf("\t%s\tShould list the entry: %v %q", failed, err, buf.String())
		}
		t.Logf("\t%s\tShould list the entry.", success)

		if err := book(&buf, []string{"admin", "book", "rm", a.String()}, path); err != nil {
			t.Fatalf("\t%s\tShould be able to remove the address: %v", failed, err)
		}
		if err := book(&buf, []string{"admin", "book", "rm", a.String()}, path); err == nil {
			t.Fatalf("\t%s\tShould fail to remove a missing address.", failed)
		}
		t.Logf("\t%s\tShould be able to remove the address once.", success)
	}
}

func Test_Address(t *testing.T) {
	t.Log("Given the need to build an address from a key.")
	{
		key := strings.Repeat("ab", 20)

		var buf bytes.Buffer
		if err := addr(&buf, []string{"admin", "addr", key, "2"}); err != nil {
			t.Fatalf("\t%s\tShould be able to build the address: %v", failed, err)
		}

		fields := strings.Fields(buf.String())
		if len(fields) < 2 {
			t.Fatalf("\t%s\tShould print the address: %q", failed, buf.String())
		}

		a, err := address.Decode(fields[1])
		if err != nil || a.Version != 2 {
			t.Fatalf("\t%s\tShould print a decodable address: %v", failed, err)
		}
		t.Logf("\t%s\tShould print a decodable address.", success)

		if err := addr(&buf, []string{"admin", "addr", "abcd"}); err == nil {
			t.Fatalf("\t%s\tShould reject a short key.", failed)
		}
		t.Logf("\t%s\tShould reject a short key.", success)
	}
}

func Test_Upgrade(t *testing.T) {
	t.Log("Given two releases.")
	{
		var buf bytes.Buffer
		if err := upgrade(&buf, []string{"admin", "upgrade", "0.24.1", "0.25.0"}); err != nil {
			t.Fatalf("\t%s\tShould be able to compare: %v", failed, err)
		}
		if !strings.Contains(buf.String(), "Upgrade: true") {
			t.Fatalf("\t%s\tShould report an upgrade: %q", failed, buf.String())
		}
		t.Logf("\t%s\tShould report an upgrade.", success)
	}
}
