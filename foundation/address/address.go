// Package address decodes and validates wallet addresses. An address is the
// base58 encoding of a 20 byte key, a version byte and a 4 byte checksum
// taken from the SHA256 of the key and version.
package address

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

const (
	keyLen      = 20
	checksumLen = 4
	addressLen  = keyLen + 1 + checksumLen
)

// Set of errors returned by Decode.
var (
	ErrEncoding = errors.New("invalid base58 encoding")
	ErrLength   = errors.New("invalid address length")
	ErrChecksum = errors.New("invalid address checksum")
)

// Address is a decoded wallet address.
type Address struct {
	Version byte
	Key     [keyLen]byte
}

// Decode converts the base58 form into an Address.
func Decode(s string) (Address, error) {
	if s == "" {
		return Address{}, ErrEncoding
	}

	b := base58.Decode(s)
	if len(b) == 0 {
		return Address{}, ErrEncoding
	}

	if len(b) != addressLen {
		return Address{}, fmt.Errorf("%w: %d bytes", ErrLength, len(b))
	}

	var a Address
	copy(a.Key[:], b[:keyLen])
	a.Version = b[keyLen]

	if !bytes.Equal(a.checksum(), b[keyLen+1:]) {
		return Address{}, ErrChecksum
	}

	return a, nil
}

// Validate reports whether s is a well formed address.
func Validate(s string) error {
	_, err := Decode(s)
	return err
}

// New constructs an address from its key and version.
func New(key []byte, version byte) (Address, error) {
	if len(key) != keyLen {
		return Address{}, fmt.Errorf("%w: key must be %d bytes", ErrLength, keyLen)
	}

	var a Address
	copy(a.Key[:], key)
	a.Version = version

	return a, nil
}

// String returns the base58 form of the address.
func (a Address) String() string {
	b := make([]byte, 0, addressLen)
	b = append(b, a.Key[:]...)
	b = append(b, a.Version)
	b = append(b, a.checksum()...)

	return base58.Encode(b)
}

func (a Address) checksum() []byte {
	h := sha256.New()
	h.Write(a.Key[:])
	h.Write([]byte{a.Version})
	return h.Sum(nil)[:checksumLen]
}
