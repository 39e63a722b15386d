// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-pass-keeper-client/internal/flow"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
)

// Config holds the collaborators of a Core.
type Config struct {
	// Key is the slot the state is saved under.
	Key string

	// Store receives a snapshot after every state change. A MemoryStore is
	// used when nil.
	Store SavedStateStore

	// Logger defaults to logger.Nop.
	Logger *logger.Logger
}

// Core holds the state of one screen instance and serialises everything
// that changes it.
type Core[S, A, E any] struct {
	key    string
	store  SavedStateStore
	logger *logger.Logger
	router *Router[A]

	state  *flow.StateFlow[S]
	events chan E

	// owned by the dispatch goroutine
	pending []E

	qmu   sync.Mutex
	queue []A
	wake  chan struct{}

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	closed  bool
	wg      sync.WaitGroup
}

// New builds a Core. The router must handle every variant listed in
// variants, otherwise [ErrUnhandledAction] is returned.
//
// The initial state is read from cfg.Store under cfg.Key; when the slot is
// empty or cannot be decoded, defaultState provides it. Either way the
// initial state is saved back before New returns.
func New[S, A, E any](cfg Config, defaultState func() S, router *Router[A], variants ...A) (*Core[S, A, E], error) {
	if err := router.Validate(variants...); err != nil {
		return nil, fmt.Errorf("invalid action router for %q: %w", cfg.Key, err)
	}

	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	var initial S
	restored, err := cfg.Store.Load(cfg.Key, &initial)
	if err != nil {
		cfg.Logger.Warn().Err(err).
			Str("func", "viewmodel.New").
			Str("slot", cfg.Key).
			Msg("saved state is unreadable, falling back to defaults")
		restored = false
	}
	if !restored {
		initial = defaultState()
	}

	c := &Core[S, A, E]{
		key:    cfg.Key,
		store:  cfg.Store,
		logger: cfg.Logger,
		router: router,
		state:  flow.NewStateFlow(initial),
		events: make(chan E),
		wake:   make(chan struct{}, 1),
	}
	c.persist(initial)

	return c, nil
}

// Start launches the dispatch loop. Everything the core owns stops when ctx
// is done or Close is called.
func (c *Core[S, A, E]) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.started {
		return ErrAlreadyStarted
	}

	c.ctx, c.cancel = context.WithCancel(ctx)
	c.started = true

	c.wg.Add(1)
	go c.loop()

	return nil
}

// Close stops the dispatch loop, background work and collectors, and waits
// for all of them to return.
func (c *Core[S, A, E]) Close() {
	c.mu.Lock()
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Discard closes the core and removes its saved state. Used when the screen
// is finished for good and must not be restored.
func (c *Core[S, A, E]) Discard() error {
	c.Close()
	if err := c.store.Forget(c.key); err != nil {
		return fmt.Errorf("forget saved state %q: %w", c.key, err)
	}
	return nil
}

// Context returns the lifetime context of a started core. Streams the
// screen subscribes to should be bound to it.
func (c *Core[S, A, E]) Context() context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ctx == nil {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	return c.ctx
}

// Send queues an action. It never blocks and is safe to call from any
// goroutine, including handlers. Actions sent after Close are dropped.
func (c *Core[S, A, E]) Send(a A) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		c.logger.Debug().
			Str("func", "Core.Send").
			Str("slot", c.key).
			Str("action", fmt.Sprintf("%T", a)).
			Msg("action dropped, view-model closed")
		return
	}

	c.qmu.Lock()
	c.queue = append(c.queue, a)
	c.qmu.Unlock()

	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// State returns the current state.
func (c *Core[S, A, E]) State() S {
	return c.state.Value()
}

// Observe returns a channel yielding the current state and every later
// one. Slow readers only see the newest state.
func (c *Core[S, A, E]) Observe(ctx context.Context) <-chan S {
	return c.state.Subscribe(ctx)
}

// Events returns the channel one-shot events are delivered on. Each event
// is received at most once.
func (c *Core[S, A, E]) Events() <-chan E {
	return c.events
}

// UpdateState replaces the state with fn(current) and saves the snapshot.
// It must only be called from a handler; fn may call State.
func (c *Core[S, A, E]) UpdateState(fn func(S) S) {
	next := c.state.Update(fn)
	c.persist(next)
}

// Emit queues a one-shot event. It must only be called from a handler.
func (c *Core[S, A, E]) Emit(e E) {
	c.pending = append(c.pending, e)
}

// Launch runs work in the background. Its result is sent back as an
// action unless the core has been closed meanwhile. It must only be called
// from a handler.
func (c *Core[S, A, E]) Launch(work func(ctx context.Context) A) {
	ctx, err := c.acquire()
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "Core.Launch").
			Str("slot", c.key).
			Msg("background work not started")
		return
	}

	go func() {
		defer c.wg.Done()

		result := work(ctx)
		if ctx.Err() != nil {
			return
		}
		c.Send(result)
	}()
}

// Collect forwards every value of in, converted with toAction, to c until
// in is closed or c stops.
func Collect[S, A, E, T any](c *Core[S, A, E], in <-chan T, toAction func(T) A) error {
	ctx, err := c.acquire()
	if err != nil {
		return err
	}

	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				c.Send(toAction(v))
			}
		}
	}()

	return nil
}

// acquire registers one goroutine with the core's wait group.
func (c *Core[S, A, E]) acquire() (context.Context, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if !c.started {
		return nil, ErrNotStarted
	}

	c.wg.Add(1)
	return c.ctx, nil
}

func (c *Core[S, A, E]) loop() {
	defer c.wg.Done()

	for {
		var (
			out  chan E
			head E
		)
		if len(c.pending) > 0 {
			out = c.events
			head = c.pending[0]
		}

		select {
		case <-c.ctx.Done():
			return
		case <-c.wake:
			for _, a := range c.drain() {
				if c.ctx.Err() != nil {
					return
				}
				c.dispatch(a)
			}
		case out <- head:
			var zero E
			c.pending[0] = zero
			c.pending = c.pending[1:]
		}
	}
}

func (c *Core[S, A, E]) drain() []A {
	c.qmu.Lock()
	defer c.qmu.Unlock()

	batch := c.queue
	c.queue = nil
	return batch
}

func (c *Core[S, A, E]) dispatch(a A) {
	c.logger.Debug().
		Str("func", "Core.dispatch").
		Str("slot", c.key).
		Str("action", fmt.Sprintf("%T", a)).
		Msg("dispatching action")

	if !c.router.Dispatch(a) {
		c.logger.Error().
			Str("func", "Core.dispatch").
			Str("slot", c.key).
			Str("action", fmt.Sprintf("%T", a)).
			Msg("action has no handler and was dropped")
	}
}

func (c *Core[S, A, E]) persist(s S) {
	if err := c.store.Save(c.key, s); err != nil {
		c.logger.Error().Err(err).
			Str("func", "Core.persist").
			Str("slot", c.key).
			Msg("failed to save state snapshot")
	}
}
