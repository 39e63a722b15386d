// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func next[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "stream closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for stream value")
	}
	var zero T
	return zero
}

func TestCombineLatest3_EmitsOnEverySource(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := make(chan DataState[int])
	b := make(chan DataState[int])
	c := make(chan DataState[int])
	out := CombineLatest3(ctx, a, b, c, sum3)

	a <- NewLoaded(1)
	// b и c ещё ничего не прислали: считаются Loading
	assert.Equal(t, Loading, next(t, out).Status)

	b <- NewLoaded(2)
	assert.Equal(t, Loading, next(t, out).Status)

	c <- NewPending(3)
	got := next(t, out)
	assert.Equal(t, Pending, got.Status)
	assert.Equal(t, 6, got.Data)

	c <- NewLoaded(4)
	got = next(t, out)
	assert.Equal(t, Loaded, got.Status)
	assert.Equal(t, 7, got.Data)
}

func TestCombineLatest3_AttachesLastAggregateOnFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := make(chan DataState[int])
	b := make(chan DataState[int])
	c := make(chan DataState[int])
	out := CombineLatest3(ctx, a, b, c, sum3)

	a <- NewLoaded(1)
	next(t, out)
	b <- NewLoaded(2)
	next(t, out)
	c <- NewLoaded(3)
	require.Equal(t, 6, next(t, out).Data)

	b <- NewError[int](errBoom)
	got := next(t, out)
	assert.Equal(t, Error, got.Status)
	assert.True(t, got.HasData)
	assert.Equal(t, 6, got.Data)

	b <- NewNoNetwork[int]()
	got = next(t, out)
	assert.Equal(t, NoNetwork, got.Status)
	assert.Equal(t, 6, got.Data)

	b <- NewLoading[int]()
	got = next(t, out)
	assert.Equal(t, Loading, got.Status)
	assert.False(t, got.HasData)
}

func TestCombineLatest2_ClosesWhenSourcesClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := make(chan DataState[int])
	b := make(chan DataState[string])
	out := CombineLatest2(ctx, a, b, func(n int, s string) string { return s })

	close(a)
	close(b)

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed")
	}
}

func TestCombineLatest2_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	a := make(chan DataState[int])
	b := make(chan DataState[int])
	out := CombineLatest2(ctx, a, b, func(x, y int) int { return x + y })
	cancel()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed after cancel")
	}
}

func TestMapStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan DataState[int], 1)
	out := MapStream(ctx, in, func(v int) int { return v * 10 })

	in <- NewPending(4)
	got := next(t, out)
	assert.Equal(t, Pending, got.Status)
	assert.Equal(t, 40, got.Data)

	close(in)
	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("stream was not closed")
	}
}
