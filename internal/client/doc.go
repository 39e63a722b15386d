// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It restores the signed-in session, loads the local vault, keeps the
// background synchronization running and hands control to the screen named
// on the command line.
package client
