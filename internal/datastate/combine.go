// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datastate

import "errors"

// header is the status part of a DataState, independent of its payload type.
type header struct {
	status  Status
	hasData bool
	err     error
}

func headerOf[T any](d DataState[T]) header {
	return header{status: d.Status, hasData: d.HasData, err: d.Err}
}

// mergeStatus picks the aggregate status of several sources. The first rule
// that matches wins: Error, Loading, NoNetwork, Pending, Loaded.
func mergeStatus(hs ...header) (Status, error) {
	var errs []error
	for _, h := range hs {
		if h.status == Error {
			errs = append(errs, h.err)
		}
	}
	if len(errs) > 0 {
		return Error, errors.Join(errs...)
	}

	for _, want := range []Status{Loading, NoNetwork, Pending} {
		for _, h := range hs {
			if h.status == want {
				return want, nil
			}
		}
	}
	return Loaded, nil
}

func allHaveData(hs ...header) bool {
	for _, h := range hs {
		if !h.hasData {
			return false
		}
	}
	return true
}

// Combine2 merges two sources. The aggregate carries a payload only when
// both inputs do; Loading never carries one.
func Combine2[A, B, R any](a DataState[A], b DataState[B], f func(A, B) R) DataState[R] {
	ha, hb := headerOf(a), headerOf(b)
	status, err := mergeStatus(ha, hb)

	out := DataState[R]{Status: status, Err: err}
	if status != Loading && allHaveData(ha, hb) {
		out.Data = f(a.Data, b.Data)
		out.HasData = true
	}
	return out
}

// Combine3 merges three sources. The aggregate carries a payload only when
// every input does; Loading never carries one.
func Combine3[A, B, C, R any](a DataState[A], b DataState[B], c DataState[C], f func(A, B, C) R) DataState[R] {
	ha, hb, hc := headerOf(a), headerOf(b), headerOf(c)
	status, err := mergeStatus(ha, hb, hc)

	out := DataState[R]{Status: status, Err: err}
	if status != Loading && allHaveData(ha, hb, hc) {
		out.Data = f(a.Data, b.Data, c.Data)
		out.HasData = true
	}
	return out
}
