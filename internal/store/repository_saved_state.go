// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
)

type savedStateRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSavedStateRepository constructs a [SavedStateRepository].
func NewSavedStateRepository(db *DB, logger *logger.Logger) SavedStateRepository {
	return &savedStateRepository{db: db, logger: logger, now: time.Now}
}

// Get implements [SavedStateRepository].
func (r *savedStateRepository) Get(ctx context.Context, slot string) ([]byte, error) {
	query, args, err := psql.Select("payload").From("saved_state").Where(sq.Eq{"slot": slot}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSavedStateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "savedStateRepository.Get").
			Str("slot", slot).
			Msg("failed to read saved state")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return payload, nil
}

// Set implements [SavedStateRepository].
func (r *savedStateRepository) Set(ctx context.Context, slot string, payload []byte) error {
	query, args, err := psql.
		Insert("saved_state").
		Columns("slot", "payload", "updated_at").
		Values(slot, payload, r.now().UTC()).
		Suffix(upsertSavedStateSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "savedStateRepository.Set").
			Str("slot", slot).
			Msg("failed to write saved state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Delete implements [SavedStateRepository].
func (r *savedStateRepository) Delete(ctx context.Context, slot string) error {
	query, args, err := psql.Delete("saved_state").Where(sq.Eq{"slot": slot}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
