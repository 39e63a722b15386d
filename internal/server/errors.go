// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNotLoopback is returned for a listen address reachable from other
	// hosts.
	ErrNotLoopback = errors.New("callback address must be a loopback address")
)
