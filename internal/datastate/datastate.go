// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datastate describes the loading status of a reactive data source
// together with its (possibly stale) payload, and combines several such
// sources into one aggregate.
package datastate

import "fmt"

// Status is the loading status of a data source.
type Status int

const (
	// Loading means no usable data is available yet.
	Loading Status = iota
	// Loaded means Data is fresh.
	Loaded
	// Pending means Data is present but a refresh is outstanding.
	Pending
	// Error means the last refresh failed; Data may hold stale content.
	Error
	// NoNetwork means the last refresh could not reach the server; Data may
	// hold stale content.
	NoNetwork
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Pending:
		return "pending"
	case Error:
		return "error"
	case NoNetwork:
		return "no_network"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// DataState wraps a value of type T with its loading status.
type DataState[T any] struct {
	Status  Status
	Data    T
	HasData bool
	Err     error
}

// NewLoading returns a Loading state without data.
func NewLoading[T any]() DataState[T] {
	return DataState[T]{Status: Loading}
}

// NewLoaded returns a Loaded state carrying v.
func NewLoaded[T any](v T) DataState[T] {
	return DataState[T]{Status: Loaded, Data: v, HasData: true}
}

// NewPending returns a Pending state carrying v.
func NewPending[T any](v T) DataState[T] {
	return DataState[T]{Status: Pending, Data: v, HasData: true}
}

// NewError returns an Error state without data.
func NewError[T any](err error) DataState[T] {
	return DataState[T]{Status: Error, Err: err}
}

// NewErrorWithData returns an Error state carrying stale data.
func NewErrorWithData[T any](err error, v T) DataState[T] {
	return DataState[T]{Status: Error, Err: err, Data: v, HasData: true}
}

// NewNoNetwork returns a NoNetwork state without data.
func NewNoNetwork[T any]() DataState[T] {
	return DataState[T]{Status: NoNetwork}
}

// NewNoNetworkWithData returns a NoNetwork state carrying stale data.
func NewNoNetworkWithData[T any](v T) DataState[T] {
	return DataState[T]{Status: NoNetwork, Data: v, HasData: true}
}

// Value returns the payload and whether it is present.
func (d DataState[T]) Value() (T, bool) {
	return d.Data, d.HasData
}

// WithStale returns d with v attached as its payload when d carries none.
// Only Error and NoNetwork states can hold stale data; other states are
// returned unchanged.
func (d DataState[T]) WithStale(v T) DataState[T] {
	if d.HasData || (d.Status != Error && d.Status != NoNetwork) {
		return d
	}
	d.Data = v
	d.HasData = true
	return d
}

// Map converts the payload of d with f, keeping status and error.
func Map[T, R any](d DataState[T], f func(T) R) DataState[R] {
	out := DataState[R]{Status: d.Status, Err: d.Err}
	if d.HasData {
		out.Data = f(d.Data)
		out.HasData = true
	}
	return out
}
