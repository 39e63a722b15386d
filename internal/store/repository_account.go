// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/internal/crypto"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

type localAccountRepository struct {
	db     *DB
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewLocalAccountRepository constructs a [LocalAccountRepository]. Access
// and refresh tokens are sealed with sealer before they reach the database.
func NewLocalAccountRepository(db *DB, sealer crypto.Sealer, logger *logger.Logger) LocalAccountRepository {
	return &localAccountRepository{db: db, sealer: sealer, logger: logger}
}

// SaveAccount upserts the session and deactivates every other account in
// the same transaction.
func (r *localAccountRepository) SaveAccount(ctx context.Context, session models.Session) (err error) {
	log := logger.FromContext(ctx)

	accessToken, err := r.seal(session.AccessToken)
	if err != nil {
		return err
	}
	refreshToken, err := r.seal(session.RefreshToken)
	if err != nil {
		return err
	}

	upsertQuery, upsertArgs, err := buildUpsertAccountQuery(session, accessToken, refreshToken)
	if err != nil {
		return err
	}
	deactivateQuery, deactivateArgs, err := buildDeactivateAccountsQuery(session.Account.UserID)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		log.Err(err).
			Str("func", "localAccountRepository.SaveAccount").
			Str("user_id", session.Account.UserID).
			Msg("failed to upsert account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, deactivateQuery, deactivateArgs...); err != nil {
		log.Err(err).
			Str("func", "localAccountRepository.SaveAccount").
			Str("user_id", session.Account.UserID).
			Msg("failed to deactivate other accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// GetActiveAccount returns the active session.
func (r *localAccountRepository) GetActiveAccount(ctx context.Context) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectActiveAccountQuery()
	if err != nil {
		return models.Session{}, err
	}

	var (
		session       models.Session
		organizations string
		accessToken   []byte
		refreshToken  []byte
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.Account.UserID,
		&session.Account.Email,
		&session.Account.Name,
		&session.Account.IsPremium,
		&organizations,
		&accessToken,
		&refreshToken,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoActiveAccount
	}
	if err != nil {
		log.Err(err).
			Str("func", "localAccountRepository.GetActiveAccount").
			Msg("failed to scan account row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := decodeJSONColumn(organizations, &session.Account.Organizations); err != nil {
		return models.Session{}, err
	}
	if len(session.Account.Organizations) == 0 {
		session.Account.Organizations = nil
	}

	if session.AccessToken, err = r.open(accessToken); err == nil {
		session.RefreshToken, err = r.open(refreshToken)
	}
	if err != nil {
		// tokens sealed under another state key cannot be used: sign in again
		log.Warn().Err(err).
			Str("func", "localAccountRepository.GetActiveAccount").
			Str("user_id", session.Account.UserID).
			Msg("stored tokens cannot be opened")
		return models.Session{}, fmt.Errorf("%w: %w", ErrNoActiveAccount, err)
	}

	return session, nil
}

// ClearActive marks every account inactive.
func (r *localAccountRepository) ClearActive(ctx context.Context) error {
	query, args, err := buildDeactivateAccountsQuery("")
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localAccountRepository.ClearActive").
			Msg("failed to deactivate accounts")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *localAccountRepository) seal(token string) ([]byte, error) {
	if token == "" {
		return []byte{}, nil
	}
	sealed, err := r.sealer.Seal([]byte(token))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealingToken, err)
	}
	return sealed, nil
}

func (r *localAccountRepository) open(sealed []byte) (string, error) {
	if len(sealed) == 0 {
		return "", nil
	}
	plain, err := r.sealer.Open(sealed)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
