// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewmodel implements the state-reduction core shared by every
// client screen.
//
// A screen is described by three types: an immutable state S, a closed set of
// actions A and a closed set of one-shot events E. [Core] owns the current
// state and feeds actions, one at a time and in arrival order, to the
// handlers registered in a [Router]. Handlers replace the state through
// [Core.UpdateState], emit events through [Core.Emit] and start background
// work through [Core.Launch]; background results always come back as
// actions, so state is only ever touched by the dispatch goroutine.
//
// Every state change is written synchronously to a [SavedStateStore] under
// the screen's key, and a new Core built over the same store resumes from
// that snapshot.
package viewmodel
