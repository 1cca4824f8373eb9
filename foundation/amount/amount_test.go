package amount_test

import (
	"errors"
	"math"
	"testing"

	"github.com/ardanlabs/skywallet/foundation/amount"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_ParseCoins(t *testing.T) {
	type table struct {
		name     string
		input    string
		droplets uint64
	}

	tt := []table{
		{name: "whole", input: "12", droplets: 12_000_000},
		{name: "fraction", input: "1.5", droplets: 1_500_000},
		{name: "smallest", input: "0.000001", droplets: 1},
		{name: "no-lead", input: ".25", droplets: 250_000},
		{name: "trailing-dot", input: "3.", droplets: 3_000_000},
		{name: "extra-zeros", input: "1.50000000", droplets: 1_500_000},
		{name: "spaces", input: " 7.1 ", droplets: 7_100_000},
	}

	t.Log("Given the need to parse coin amounts.")
	{
		for _, tst := range tt {
			f := func(t *testing.T) {
				got, err := amount.ParseCoins(tst.input)
				if err != nil {
					t.Fatalf("\t%s\tTest %s:\tShould be able to parse %q: %v", failed, tst.name, tst.input, err)
				}
				if got != tst.droplets {
					t.Logf("\t\tTest %s:\tgot: %d", tst.name, got)
					t.Logf("\t\tTest %s:\texp: %d", tst.name, tst.droplets)
					t.Fatalf("\t%s\tTest %s:\tShould get back the right droplets.", failed, tst.name)
				}
				t.Logf("\t%s\tTest %s:\tShould get back the right droplets.", success, tst.name)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_ParseCoinsErrors(t *testing.T) {
	type table struct {
		name  string
		input string
		err   error
	}

	tt := []table{
		{name: "empty", input: "", err: amount.ErrEmpty},
		{name: "sign", input: "+", err: amount.ErrEmpty},
		{name: "spacedsign", input: " + ", err: amount.ErrEmpty},
		{name: "negative", input: "-1", err: amount.ErrNegative},
		{name: "precision", input: "0.0000001", err: amount.ErrPrecision},
		{name: "overflow", input: "18446744073710", err: amount.ErrOverflow},
		{name: "letters", input: "1a"},
		{name: "dot", input: "."},
	}

	t.Log("Given the need to reject bad coin amounts.")
	{
		for _, tst := range tt {
			f := func(t *testing.T) {
				_, err := amount.ParseCoins(tst.input)
				if err == nil {
					t.Fatalf("\t%s\tTest %s:\tShould reject %q.", failed, tst.name, tst.input)
				}
				if tst.err != nil && !errors.Is(err, tst.err) {
					t.Fatalf("\t%s\tTest %s:\tShould get back %v, got %v.", failed, tst.name, tst.err, err)
				}
				t.Logf("\t%s\tTest %s:\tShould reject %q.", success, tst.name, tst.input)
			}

			t.Run(tst.name, f)
		}
	}
}

func Test_Format(t *testing.T) {
	t.Log("Given the need to format amounts for display.")
	{
		coins := map[uint64]string{
			0:             "0",
			1:             "0.000001",
			1_500_000:     "1.5",
			2_000_000:     "2",
			1_234_567_891: "1234.567891",
		}
		for droplets, exp := range coins {
			if got := amount.FormatCoins(droplets); got != exp {
				t.Fatalf("\t%s\tShould format %d as %q, got %q.", failed, droplets, exp, got)
			}
		}
		t.Logf("\t%s\tShould format droplets as coins.", success)

		grouped := map[uint64]string{
			0:             "0",
			999:           "999",
			1000:          "1,000",
			1234567:       "1,234,567",
			math.MaxUint64: "18,446,744,073,709,551,615",
		}
		for n, exp := range grouped {
			if got := amount.GroupDigits(n); got != exp {
				t.Fatalf("\t%s\tShould group %d as %q, got %q.", failed, n, exp, got)
			}
		}
		t.Logf("\t%s\tShould group digits.", success)

		if got := amount.FormatCoinsGrouped(1_234_567_500_000); got != "1,234,567.5" {
			t.Fatalf("\t%s\tShould format grouped coins, got %q.", failed, got)
		}
		t.Logf("\t%s\tShould format grouped coins.", success)
	}
}
