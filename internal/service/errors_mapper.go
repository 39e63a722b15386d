// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/internal/adapter"
	"github.com/MKhiriev/go-pass-keeper-client/internal/app"
	"github.com/MKhiriev/go-pass-keeper-client/internal/datastate"
	"github.com/MKhiriev/go-pass-keeper-client/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNoNetwork):
		return fmt.Errorf("%w: %w", ErrNoNetwork, err)
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	case errors.Is(err, adapter.ErrNotFound), errors.Is(err, store.ErrCipherNotFound):
		return fmt.Errorf("%w: %w", ErrCipherNotFound, err)
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return fmt.Errorf("%w: %w", ErrAttachmentTooLarge, err)
	}

	return err
}

// failedState folds a refresh failure into a DataState, attaching the stale
// payload when there is one.
func failedState[T any](err error, stale datastate.DataState[T]) datastate.DataState[T] {
	var out datastate.DataState[T]
	if errors.Is(err, ErrNoNetwork) {
		out = datastate.NewNoNetwork[T]()
	} else {
		out = datastate.NewError[T](err)
	}

	if v, ok := stale.Value(); ok {
		out = out.WithStale(v)
	}
	return out
}

// ErrorMessage returns the text a screen shows for err.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoNetwork):
		return app.MsgInternetRequired
	case errors.Is(err, ErrCipherNotFound):
		return app.MsgItemNotFound
	case errors.Is(err, ErrAttachmentTooLarge):
		return app.MsgMaxFileSize
	}
	return app.MsgGenericError
}
