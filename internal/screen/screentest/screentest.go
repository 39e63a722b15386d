// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package screentest provides helpers for testing screen view-models.
package screentest

import (
	"testing"
	"time"
)

// Timeout bounds every wait of this package.
const Timeout = 2 * time.Second

// WaitState reads states until pred holds and returns the matching one.
func WaitState[S any](t testing.TB, states <-chan S, pred func(S) bool) S {
	t.Helper()
	deadline := time.After(Timeout)
	for {
		select {
		case s, ok := <-states:
			if !ok {
				t.Fatal("state stream closed before the expected state arrived")
			}
			if pred(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timeout waiting for state")
		}
	}
}

// NextEvent returns the next event.
func NextEvent[E any](t testing.TB, events <-chan E) E {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(Timeout):
		t.Fatal("timeout waiting for event")
	}
	var zero E
	return zero
}

// NoEvent fails when an event arrives within d.
func NoEvent[E any](t testing.TB, events <-chan E, d time.Duration) {
	t.Helper()
	select {
	case e := <-events:
		t.Fatalf("unexpected event %#v", e)
	case <-time.After(d):
	}
}
