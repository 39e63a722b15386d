// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// CallbackServer serves handler on a loopback address. Start does not
// block; the server runs until Stop is called or the start context is done.
type CallbackServer struct {
	server *http.Server
	logger *logger.Logger

	mu       sync.Mutex
	listener net.Listener
	done     chan struct{}
	stopOnce sync.Once
}

// NewCallbackServer validates address and prepares the server.
func NewCallbackServer(handler http.Handler, address string, logger *logger.Logger) (*CallbackServer, error) {
	if err := checkLoopback(address); err != nil {
		return nil, err
	}

	return &CallbackServer{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}, nil
}

// Start binds the address and serves in the background. A bind failure is
// logged: captcha tokens can still be pasted by hand.
func (s *CallbackServer) Start(ctx context.Context) {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("func", "CallbackServer.Start").
			Str("address", s.server.Addr).
			Msg("captcha callback listener not started")
		return
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.listener = ln
	s.done = done
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "CallbackServer.Start").
		Str("address", ln.Addr().String()).
		Msg("captcha callback listener started")

	go func() {
		defer close(done)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Str("func", "CallbackServer.Start").Msg("captcha callback listener failed")
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			s.shutdown()
		case <-done:
		}
	}()
}

// Stop shuts the server down and waits for Serve to return.
func (s *CallbackServer) Stop() {
	s.shutdown()

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Addr returns the bound address, or nil before a successful Start.
func (s *CallbackServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *CallbackServer) shutdown() {
	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("func", "CallbackServer.Stop").Msg("captcha callback listener shutdown")
			return
		}
		s.logger.Info().Str("func", "CallbackServer.Stop").Msg("captcha callback listener stopped")
	})
}

func checkLoopback(address string) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("parse callback address: %w", err)
	}
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNotLoopback, address)
}
