// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"
)

// waitFor читает поток, пока pred не вернёт true
func waitFor[T any](t *testing.T, ch <-chan T, pred func(T) bool) T {
	t.Helper()
	timeout := time.After(time.Second)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				t.Fatal("stream closed before the expected value arrived")
			}
			if pred(v) {
				return v
			}
		case <-timeout:
			t.Fatal("timeout waiting for stream value")
		}
	}
}
