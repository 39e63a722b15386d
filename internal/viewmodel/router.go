// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"errors"
	"fmt"
	"reflect"
)

// Router maps every concrete action variant of A to exactly one handler.
type Router[A any] struct {
	handlers map[reflect.Type]func(A)
	err      error
}

// NewRouter creates an empty Router.
func NewRouter[A any]() *Router[A] {
	return &Router[A]{handlers: make(map[reflect.Type]func(A))}
}

// On registers h as the handler of the action variant T. Registration
// mistakes are collected and reported by [Router.Validate].
func On[A, T any](r *Router[A], h func(T)) {
	t := reflect.TypeFor[T]()

	if !t.AssignableTo(reflect.TypeFor[A]()) {
		r.err = errors.Join(r.err, fmt.Errorf("%w: %s", ErrNotAction, t))
		return
	}
	if _, ok := r.handlers[t]; ok {
		r.err = errors.Join(r.err, fmt.Errorf("%w: %s", ErrDuplicateHandler, t))
		return
	}

	r.handlers[t] = func(a A) {
		h(any(a).(T))
	}
}

// Validate checks that every variant has a handler and that no registration
// error happened.
func (r *Router[A]) Validate(variants ...A) error {
	err := r.err
	for _, v := range variants {
		t := reflect.TypeOf(v)
		if _, ok := r.handlers[t]; !ok {
			err = errors.Join(err, fmt.Errorf("%w: %v", ErrUnhandledAction, t))
		}
	}
	return err
}

// Dispatch calls the handler of a's dynamic type. It reports false when no
// handler is registered.
func (r *Router[A]) Dispatch(a A) bool {
	h, ok := r.handlers[reflect.TypeOf(a)]
	if !ok {
		return false
	}
	h(a)
	return true
}
