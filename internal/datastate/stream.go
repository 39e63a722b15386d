// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastate

import "context"

// MapStream forwards every state of in converted with f. The returned
// channel closes when in closes or ctx is done.
func MapStream[T, R any](ctx context.Context, in <-chan DataState[T], f func(T) R) <-chan DataState[R] {
	out := make(chan DataState[R])
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				if !send(ctx, out, Map(v, f)) {
					return
				}
			}
		}
	}()
	return out
}

// CombineLatest2 emits Combine2 of the latest values of a and b every time
// either source emits. A source that has not emitted yet counts as Loading.
// When the aggregate fails without a payload, the last aggregate payload is
// attached as stale data.
func CombineLatest2[A, B, R any](ctx context.Context, a <-chan DataState[A], b <-chan DataState[B], f func(A, B) R) <-chan DataState[R] {
	out := make(chan DataState[R])
	go func() {
		defer close(out)

		la, lb := NewLoading[A](), NewLoading[B]()
		var (
			last    R
			hasLast bool
		)

		for a != nil || b != nil {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-a:
				if !ok {
					a = nil
					continue
				}
				la = v
			case v, ok := <-b:
				if !ok {
					b = nil
					continue
				}
				lb = v
			}

			agg := Combine2(la, lb, f)
			if agg.HasData {
				last, hasLast = agg.Data, true
			} else if hasLast {
				agg = agg.WithStale(last)
			}
			if !send(ctx, out, agg) {
				return
			}
		}
	}()
	return out
}

// CombineLatest3 is CombineLatest2 for three sources.
func CombineLatest3[A, B, C, R any](ctx context.Context, a <-chan DataState[A], b <-chan DataState[B], c <-chan DataState[C], f func(A, B, C) R) <-chan DataState[R] {
	out := make(chan DataState[R])
	go func() {
		defer close(out)

		la, lb, lc := NewLoading[A](), NewLoading[B](), NewLoading[C]()
		var (
			last    R
			hasLast bool
		)

		for a != nil || b != nil || c != nil {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-a:
				if !ok {
					a = nil
					continue
				}
				la = v
			case v, ok := <-b:
				if !ok {
					b = nil
					continue
				}
				lb = v
			case v, ok := <-c:
				if !ok {
					c = nil
					continue
				}
				lc = v
			}

			agg := Combine3(la, lb, lc, f)
			if agg.HasData {
				last, hasLast = agg.Data, true
			} else if hasLast {
				agg = agg.WithStale(last)
			}
			if !send(ctx, out, agg) {
				return
			}
		}
	}()
	return out
}

func send[T any](ctx context.Context, out chan<- T, v T) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- v:
		return true
	}
}
