// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-keeper-client/models"
)

// psql is the squirrel builder with sqlite placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var (
	cipherColumns = []string{
		"id",
		"organization_id",
		"folder_id",
		"type",
		"name",
		"notes",
		"collection_ids",
		"attachments",
		"revision_date",
	}
	folderColumns     = []string{"id", "name", "revision_date"}
	collectionColumns = []string{"id", "organization_id", "name", "read_only"}
	accountColumns    = []string{"user_id", "email", "name", "premium", "organizations", "access_token", "refresh_token"}
)

const (
	upsertCipherSuffix = `ON CONFLICT(user_id, id) DO UPDATE SET
		organization_id = excluded.organization_id,
		folder_id = excluded.folder_id,
		type = excluded.type,
		name = excluded.name,
		notes = excluded.notes,
		collection_ids = excluded.collection_ids,
		attachments = excluded.attachments,
		revision_date = excluded.revision_date`

	upsertAccountSuffix = `ON CONFLICT(user_id) DO UPDATE SET
		email = excluded.email,
		name = excluded.name,
		premium = excluded.premium,
		organizations = excluded.organizations,
		access_token = excluded.access_token,
		refresh_token = excluded.refresh_token,
		active = excluded.active`

	upsertSavedStateSuffix = `ON CONFLICT(slot) DO UPDATE SET
		payload = excluded.payload,
		updated_at = excluded.updated_at`
)

func buildSelectCiphersQuery(userID string, cipherIDs ...string) (string, []any, error) {
	where := sq.Eq{"user_id": userID}
	if len(cipherIDs) > 0 {
		where["id"] = cipherIDs
	}

	query, args, err := psql.
		Select(cipherColumns...).
		From("ciphers").
		Where(where).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertCiphersQuery builds a single multi-row insert. With upsert set
// existing rows are replaced in place.
func buildInsertCiphersQuery(userID string, upsert bool, ciphers ...models.Cipher) (string, []any, error) {
	builder := psql.
		Insert("ciphers").
		Columns(append([]string{"user_id"}, cipherColumns...)...)

	for _, c := range ciphers {
		collectionIDs, err := encodeJSONColumn(c.CollectionIDs, "[]")
		if err != nil {
			return "", nil, err
		}
		attachments, err := encodeJSONColumn(c.Attachments, "[]")
		if err != nil {
			return "", nil, err
		}

		builder = builder.Values(
			userID,
			c.ID,
			c.OrganizationID,
			c.FolderID,
			int(c.Type),
			c.Name,
			c.Notes,
			collectionIDs,
			attachments,
			c.RevisionDate.UTC(),
		)
	}

	if upsert {
		builder = builder.Suffix(upsertCipherSuffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertFoldersQuery(userID string, folders ...models.Folder) (string, []any, error) {
	builder := psql.
		Insert("folders").
		Columns(append([]string{"user_id"}, folderColumns...)...)
	for _, f := range folders {
		builder = builder.Values(userID, f.ID, f.Name, f.RevisionDate.UTC())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCollectionsQuery(userID string, collections ...models.Collection) (string, []any, error) {
	builder := psql.
		Insert("collections").
		Columns(append([]string{"user_id"}, collectionColumns...)...)
	for _, c := range collections {
		builder = builder.Values(userID, c.ID, c.OrganizationID, c.Name, c.ReadOnly)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteUserRowsQuery(table, userID string) (string, []any, error) {
	query, args, err := psql.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserRowsQuery(table string, columns []string, userID string) (string, []any, error) {
	query, args, err := psql.
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertAccountQuery writes the account of session with its tokens
// already sealed by the caller.
func buildUpsertAccountQuery(session models.Session, accessToken, refreshToken []byte) (string, []any, error) {
	organizations, err := encodeJSONColumn(session.Account.Organizations, "[]")
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Insert("accounts").
		Columns(append(accountColumns, "active")...).
		Values(
			session.Account.UserID,
			session.Account.Email,
			session.Account.Name,
			session.Account.IsPremium,
			organizations,
			accessToken,
			refreshToken,
			true,
		).
		Suffix(upsertAccountSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeactivateAccountsQuery(exceptUserID string) (string, []any, error) {
	builder := psql.Update("accounts").Set("active", false)
	if exceptUserID != "" {
		builder = builder.Where(sq.NotEq{"user_id": exceptUserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectActiveAccountQuery() (string, []any, error) {
	query, args, err := psql.
		Select(accountColumns...).
		From("accounts").
		Where(sq.Eq{"active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func encodeJSONColumn(v any, empty string) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	if string(raw) == "null" {
		return empty, nil
	}
	return string(raw), nil
}

func decodeJSONColumn(raw string, dst any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return nil
}
