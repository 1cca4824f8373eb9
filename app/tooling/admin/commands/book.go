// Package commands contains the admin tool commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/addressbook"
)

// Book lists, adds to or removes from the address book file.
func Book(args []string, path string) error {
	return book(os.Stdout, args, path)
}

func book(w io.Writer, args []string, path string) error {
	var sub string
	if len(args) > 2 {
		sub = args[2]
	}

	ab, err := addressbook.New(path)
	if err != nil {
		return err
	}
	labels := ab.Copy()

	switch sub {
	case "add":
		if len(args) != 5 {
			return errors.New("usage: book add <address> <label>")
		}
		if err := address.Validate(args[3]); err != nil {
			return fmt.Errorf("address %q: %w", args[3], err)
		}
		labels[args[3]] = args[4]

		if err := addressbook.Save(path, entries(labels)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Added: %s  Label: %s\n", args[3], args[4])

	case "rm":
		if len(args) != 4 {
			return errors.New("usage: book rm <address>")
		}
		if _, exists := labels[args[3]]; !exists {
			return fmt.Errorf("address %q is not in the book", args[3])
		}
		delete(labels, args[3])

		if err := addressbook.Save(path, entries(labels)); err != nil {
			return err
		}
		fmt.Fprintf(w, "Removed: %s\n", args[3])

	default:
		for _, e := range entries(labels) {
			fmt.Fprintf(w, "Address: %s  Label: %s\n", e.Address, e.Label)
		}
	}

	return nil
}

func entries(labels map[string]string) []addressbook.Entry {
	es := make([]addressbook.Entry, 0, len(labels))
	for addr, label := range labels {
		es = append(es, addressbook.Entry{Address: addr, Label: label})
	}

	sort.Slice(es, func(i, j int) bool {
		return es[i].Address < es[j].Address
	})

	return es
}
