package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ardanlabs/skywallet/foundation/address"
	"github.com/ardanlabs/skywallet/foundation/semver"
)

// Address prints the address for a hex encoded 20 byte key, or decodes an
// address back into its version and key.
func Address(args []string) error {
	return addr(os.Stdout, args)
}

func addr(w io.Writer, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: addr <hexkey|address> [version]")
	}

	if a, err := address.Decode(args[2]); err == nil {
		fmt.Fprintf(w, "Address: %s  Version: %d  Key: %x\n", a, a.Version, a.Key)
		return nil
	}

	key, err := hex.DecodeString(args[2])
	if err != nil {
		return fmt.Errorf("key %q is neither an address nor hex: %w", args[2], err)
	}

	var version uint64
	if len(args) > 3 {
		if version, err = strconv.ParseUint(args[3], 10, 8); err != nil {
			return fmt.Errorf("version %q: %w", args[3], err)
		}
	}

	a, err := address.New(key, byte(version))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Address: %s  Version: %d  Key: %x\n", a, a.Version, a.Key)

	return nil
}

// Upgrade reports whether a node running current should upgrade to latest.
func Upgrade(args []string) error {
	return upgrade(os.Stdout, args)
}

func upgrade(w io.Writer, args []string) error {
	if len(args) != 4 {
		return errors.New("usage: upgrade <current> <latest>")
	}

	should, err := semver.ShouldUpgrade(args[2], args[3])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Current: %s  Latest: %s  Upgrade: %t\n", args[2], args[3], should)

	return nil
}
