package events_test

import (
	"testing"

	"github.com/ardanlabs/skywallet/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Events(t *testing.T) {
	t.Log("Given the need to fan out events.")
	{
		evts := events.New()

		ch1 := evts.Acquire("one")
		evts.Send([]byte("first"))

		if msg := <-ch1; string(msg) != "first" {
			t.Fatalf("\t%s\tShould receive the message, got %q.", failed, msg)
		}
		t.Logf("\t%s\tShould receive the message.", success)

		ch2 := evts.Acquire("two")
		if msg := <-ch2; string(msg) != "first" {
			t.Fatalf("\t%s\tShould replay the last message to a new subscriber, got %q.", failed, msg)
		}
		t.Logf("\t%s\tShould replay the last message to a new subscriber.", success)

		if evts.Subscribers() != 2 {
			t.Fatalf("\t%s\tShould have two subscribers, got %d.", failed, evts.Subscribers())
		}

		if err := evts.Release("one"); err != nil {
			t.Fatalf("\t%s\tShould be able to release: %v", failed, err)
		}
		if _, ok := <-ch1; ok {
			t.Fatalf("\t%s\tShould close a released channel.", failed)
		}
		if err := evts.Release("one"); err == nil {
			t.Fatalf("\t%s\tShould fail to release twice.", failed)
		}
		t.Logf("\t%s\tShould close a released channel.", success)

		evts.Shutdown()
		if _, ok := <-ch2; ok {
			t.Fatalf("\t%s\tShould close all channels on shutdown.", failed)
		}
		if evts.Subscribers() != 0 {
			t.Fatalf("\t%s\tShould have no subscribers after shutdown.", failed)
		}
		t.Logf("\t%s\tShould close all channels on shutdown.", success)
	}
}

func Test_SendDoesNotBlock(t *testing.T) {
	t.Log("Given a subscriber that does not read.")
	{
		evts := events.New()
		evts.Acquire("slow")

		for i := 0; i < 500; i++ {
			evts.Send([]byte("tick"))
		}
		t.Logf("\t%s\tShould not block the sender.", success)
	}
}
