// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package flow provides StateFlow, a concurrency-safe holder of a single
// latest value that can be observed by any number of subscribers.
//
// Subscribers are conflated: a slow reader never blocks a writer and always
// sees the newest value once it catches up. This is the building block for
// every reactive stream in the client (vault data, user state, screen state).
package flow

import (
	"context"
	"sync"
)

// StateFlow holds the latest value of type T and broadcasts every change.
type StateFlow[T any] struct {
	mu      sync.Mutex
	value   T
	version uint64
	subs    map[uint64]chan T
	nextID  uint64
}

// NewStateFlow creates a StateFlow holding initial.
func NewStateFlow[T any](initial T) *StateFlow[T] {
	return &StateFlow[T]{
		value: initial,
		subs:  make(map[uint64]chan T),
	}
}

// Value returns the current value.
func (f *StateFlow[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Set replaces the current value and notifies every subscriber.
func (f *StateFlow[T]) Set(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setLocked(v)
}

// Update applies fn to the current value, stores the result and notifies
// subscribers. It returns the new value.
//
// fn runs without the lock held, so it may read the flow. When another
// writer changed the value in the meantime, fn is applied again to the
// newer value.
func (f *StateFlow[T]) Update(fn func(T) T) T {
	for {
		f.mu.Lock()
		cur, seen := f.value, f.version
		f.mu.Unlock()

		next := fn(cur)

		f.mu.Lock()
		if f.version == seen {
			f.setLocked(next)
			f.mu.Unlock()
			return next
		}
		f.mu.Unlock()
	}
}

func (f *StateFlow[T]) setLocked(v T) {
	f.value = v
	f.version++
	for _, ch := range f.subs {
		offer(ch, v)
	}
}

// Subscribe returns a channel that first yields the current value and then
// every subsequent one. The channel is closed once ctx is done.
func (f *StateFlow[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	ch <- f.value
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		close(ch)
		f.mu.Unlock()
	}()

	return ch
}

// Subscribers returns the number of live subscriptions.
func (f *StateFlow[T]) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// offer replaces a pending unread value with v. ch must have capacity 1 and
// the caller must hold the flow's lock, so the send never blocks.
func offer[T any](ch chan T, v T) {
	select {
	case <-ch:
	default:
	}
	ch <- v
}
