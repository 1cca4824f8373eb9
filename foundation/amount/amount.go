// Package amount converts between coin strings and droplets, the integer unit
// the node uses, and formats coin hours for display.
package amount

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimals is the number of decimal places a coin amount can carry.
const Decimals = 6

// DropletsPerCoin is the number of droplets in a coin.
const DropletsPerCoin uint64 = 1_000_000

// Set of errors returned by ParseCoins.
var (
	ErrEmpty     = errors.New("empty amount")
	ErrNegative  = errors.New("negative amount")
	ErrPrecision = fmt.Errorf("amount has more than %d decimals", Decimals)
	ErrOverflow  = errors.New("amount overflows")
)

// ParseCoins converts a decimal coin string such as "12.5" into droplets.
func ParseCoins(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, ErrNegative
	}
	s = strings.TrimSpace(strings.TrimPrefix(s, "+"))
	if s == "" {
		return 0, ErrEmpty
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if hasDot && whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if whole == "" {
		whole = "0"
	}

	// Zeros past the precision do not change the value.
	frac = strings.TrimRight(frac, "0")
	if len(frac) > Decimals {
		return 0, ErrPrecision
	}

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	var f uint64
	if frac != "" {
		f, err = strconv.ParseUint(frac+strings.Repeat("0", Decimals-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	if w > (math.MaxUint64-f)/DropletsPerCoin {
		return 0, ErrOverflow
	}

	return w*DropletsPerCoin + f, nil
}

// FormatCoins converts droplets into a coin string with trailing zeros
// removed: 1500000 is "1.5" and 2000000 is "2".
func FormatCoins(droplets uint64) string {
	whole := droplets / DropletsPerCoin
	frac := droplets % DropletsPerCoin

	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}

	fs := fmt.Sprintf("%0*d", Decimals, frac)
	fs = strings.TrimRight(fs, "0")

	return strconv.FormatUint(whole, 10) + "." + fs
}

// GroupDigits formats n with comma thousands separators.
func GroupDigits(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	return b.String()
}

// FormatCoinsGrouped formats droplets as coins with a grouped whole part.
func FormatCoinsGrouped(droplets uint64) string {
	whole := GroupDigits(droplets / DropletsPerCoin)
	s := FormatCoins(droplets % DropletsPerCoin)
	if s == "0" {
		return whole
	}
	return whole + strings.TrimPrefix(s, "0")
}
