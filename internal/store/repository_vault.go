// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// localVaultRepository is the SQLite-backed implementation of
// [LocalVaultRepository].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, cipher_id, etc.).
type localVaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalVaultRepository constructs a [LocalVaultRepository] backed by the
// provided database connection and logger.
func NewLocalVaultRepository(db *DB, logger *logger.Logger) LocalVaultRepository {
	return &localVaultRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// ReplaceVault deletes the user's ciphers, folders and collections and
// inserts the new sets inside one transaction. On any failure the
// transaction is rolled back and the previous vault stays intact.
func (l *localVaultRepository) ReplaceVault(ctx context.Context, userID string, ciphers []models.Cipher, folders []models.Folder, collections []models.Collection) (err error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.ReplaceVault").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"ciphers", "folders", "collections"} {
		query, args, buildErr := buildDeleteUserRowsQuery(table, userID)
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localVaultRepository.ReplaceVault").
				Str("user_id", userID).
				Str("table", table).
				Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	inserts := make([]func() (string, []any, error), 0, 3)
	if len(ciphers) > 0 {
		inserts = append(inserts, func() (string, []any, error) { return buildInsertCiphersQuery(userID, false, ciphers...) })
	}
	if len(folders) > 0 {
		inserts = append(inserts, func() (string, []any, error) { return buildInsertFoldersQuery(userID, folders...) })
	}
	if len(collections) > 0 {
		inserts = append(inserts, func() (string, []any, error) { return buildInsertCollectionsQuery(userID, collections...) })
	}

	for _, build := range inserts {
		query, args, buildErr := build()
		if buildErr != nil {
			return buildErr
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localVaultRepository.ReplaceVault").
				Str("user_id", userID).
				Msg("failed to insert vault rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.ReplaceVault").
			Str("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "localVaultRepository.ReplaceVault").
		Str("user_id", userID).
		Int("ciphers", len(ciphers)).
		Int("folders", len(folders)).
		Int("collections", len(collections)).
		Msg("local vault replaced")

	return nil
}

// GetCiphers returns every cipher of userID. An empty vault yields an empty
// slice.
func (l *localVaultRepository) GetCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCiphersQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.GetCiphers").
			Str("user_id", userID).
			Msg("failed to execute query for getting ciphers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ciphers := make([]models.Cipher, 0, 50)
	for rows.Next() {
		c, scanErr := scanCipher(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localVaultRepository.GetCiphers").
				Str("user_id", userID).
				Msg("failed to scan cipher row")
			return nil, scanErr
		}
		ciphers = append(ciphers, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localVaultRepository.GetCiphers").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return ciphers, nil
}

// GetCipher returns a single cipher of userID.
func (l *localVaultRepository) GetCipher(ctx context.Context, userID, cipherID string) (models.Cipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCiphersQuery(userID, cipherID)
	if err != nil {
		return models.Cipher{}, err
	}

	c, err := scanCipher(l.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cipher{}, ErrCipherNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.GetCipher").
			Str("user_id", userID).
			Str("cipher_id", cipherID).
			Msg("failed to get cipher")
		return models.Cipher{}, err
	}

	return c, nil
}

// SaveCipher upserts a single cipher of userID.
func (l *localVaultRepository) SaveCipher(ctx context.Context, userID string, cipher models.Cipher) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCiphersQuery(userID, true, cipher)
	if err != nil {
		return err
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.SaveCipher").
			Str("user_id", userID).
			Str("cipher_id", cipher.ID).
			Msg("failed to execute upsert for cipher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetCollections returns all collections cached for userID.
func (l *localVaultRepository) GetCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserRowsQuery("collections", collectionColumns, userID)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.GetCollections").
			Str("user_id", userID).
			Msg("failed to execute query for getting collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	collections := make([]models.Collection, 0, 16)
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.ReadOnly); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return collections, nil
}

// GetFolders returns all folders cached for userID.
func (l *localVaultRepository) GetFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserRowsQuery("folders", folderColumns, userID)
	if err != nil {
		return nil, err
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localVaultRepository.GetFolders").
			Str("user_id", userID).
			Msg("failed to execute query for getting folders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0, 16)
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.RevisionDate); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func scanCipher(row rowScanner) (models.Cipher, error) {
	var (
		c              models.Cipher
		organizationID sql.NullString
		folderID       sql.NullString
		notes          sql.NullString
		cipherType     int
		collectionIDs  string
		attachments    string
	)

	err := row.Scan(
		&c.ID,
		&organizationID,
		&folderID,
		&cipherType,
		&c.Name,
		&notes,
		&collectionIDs,
		&attachments,
		&c.RevisionDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cipher{}, err
	}
	if err != nil {
		return models.Cipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	c.Type = models.CipherType(cipherType)
	c.OrganizationID = nullStringPtr(organizationID)
	c.FolderID = nullStringPtr(folderID)
	c.Notes = nullStringPtr(notes)

	if err := decodeJSONColumn(collectionIDs, &c.CollectionIDs); err != nil {
		return models.Cipher{}, err
	}
	if err := decodeJSONColumn(attachments, &c.Attachments); err != nil {
		return models.Cipher{}, err
	}
	if len(c.CollectionIDs) == 0 {
		c.CollectionIDs = nil
	}
	if len(c.Attachments) == 0 {
		c.Attachments = nil
	}

	return c, nil
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
