// Package addressbook reads a YAML file of labelled addresses and provides
// a label lookup for display.
package addressbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/ardanlabs/skywallet/foundation/address"
	"gopkg.in/yaml.v3"
)

// Entry is a labelled address as it appears in the file.
type Entry struct {
	Address string `yaml:"address"`
	Label   string `yaml:"label"`
}

// Book maintains a map of addresses for label lookup.
type Book struct {
	labels map[string]string
}

// New constructs a Book from the YAML file at path. A missing file produces
// an empty book.
func New(path string) (*Book, error) {
	b := Book{
		labels: make(map[string]string),
	}

	if path == "" {
		return &b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &b, nil
		}
		return nil, fmt.Errorf("reading address book: %w", err)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding address book: %w", err)
	}

	for i, e := range entries {
		if err := address.Validate(e.Address); err != nil {
			return nil, fmt.Errorf("entry %d: address %q: %w", i, e.Address, err)
		}
		b.labels[e.Address] = e.Label
	}

	return &b, nil
}

// Lookup returns the label for the specified address, or the address itself
// when it has no label.
func (b *Book) Lookup(addr string) string {
	label, exists := b.labels[addr]
	if !exists || label == "" {
		return addr
	}
	return label
}

// Addresses returns the known addresses in sorted order.
func (b *Book) Addresses() []string {
	addrs := make([]string, 0, len(b.labels))
	for addr := range b.labels {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)

	return addrs
}

// Copy returns a copy of the map of addresses and labels.
func (b *Book) Copy() map[string]string {
	cpy := make(map[string]string, len(b.labels))
	for addr, label := range b.labels {
		cpy[addr] = label
	}
	return cpy
}

// Save writes the entries to path in the format New reads.
func Save(path string, entries []Entry) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding address book: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing address book: %w", err)
	}

	return nil
}
