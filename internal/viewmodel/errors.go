// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import "errors"

var (
	// ErrUnhandledAction is returned by [New] when a declared action variant
	// has no registered handler.
	ErrUnhandledAction = errors.New("action variant has no handler")

	// ErrDuplicateHandler is returned by [New] when an action variant was
	// registered more than once.
	ErrDuplicateHandler = errors.New("action variant has more than one handler")

	// ErrNotAction is returned by [New] when a handler was registered for a
	// type that does not implement the screen's action type.
	ErrNotAction = errors.New("handler type is not an action")

	// ErrAlreadyStarted is returned by [Core.Start] on a second call.
	ErrAlreadyStarted = errors.New("view-model already started")

	// ErrNotStarted is returned when an operation needs a running core.
	ErrNotStarted = errors.New("view-model not started")

	// ErrClosed is returned when the core has been closed.
	ErrClosed = errors.New("view-model closed")
)
