// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-pass-keeper-client/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVaultRepo(t *testing.T) (*localVaultRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	l := logger.Nop()
	repo := &localVaultRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func cipherRows() *sqlmock.Rows {
	return sqlmock.NewRows(cipherColumns)
}

// ── ReplaceVault ──────────────────────────────────────────────────────────────

func TestReplaceVault_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rev := time.Now().UTC()
	ciphers := []models.Cipher{{ID: "c1", Name: "one", RevisionDate: rev}}
	collections := []models.Collection{{ID: "col-1", OrganizationID: "org-1", Name: "Team"}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ciphers").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM folders").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM collections").WithArgs("u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ciphers").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO collections").
		WithArgs("u1", "col-1", "org-1", "Team", false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceVault(context.Background(), "u1", ciphers, nil, collections)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceVault_RollsBackOnInsertError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ciphers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM folders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM collections").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO ciphers").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceVault(context.Background(), "u1", []models.Cipher{{ID: "c1"}}, nil, nil)
	require.ErrorIs(t, err, ErrExecutingStatement)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceVault_BeginError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.ReplaceVault(context.Background(), "u1", nil, nil, nil)
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestReplaceVault_CommitError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ciphers").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM folders").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM collections").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit().WillReturnError(errors.New("io"))

	err := repo.ReplaceVault(context.Background(), "u1", nil, nil, nil)
	require.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── GetCiphers / GetCipher ────────────────────────────────────────────────────

func TestGetCiphers_ScansJSONColumns(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rev := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := cipherRows().
		AddRow("c1", "org-1", nil, 1, "GitHub", "note", `["col-1","col-2"]`, `[{"id":"a1","fileName":"f.txt","size":10,"sizeName":"10 B"}]`, rev).
		AddRow("c2", nil, "folder-1", 2, "Memo", nil, `[]`, `[]`, rev)

	mock.ExpectQuery("SELECT (.+) FROM ciphers").WithArgs("u1").WillReturnRows(rows)

	ciphers, err := repo.GetCiphers(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, ciphers, 2)

	assert.Equal(t, "org-1", *ciphers[0].OrganizationID)
	assert.Nil(t, ciphers[0].FolderID)
	assert.Equal(t, "note", *ciphers[0].Notes)
	assert.Equal(t, []string{"col-1", "col-2"}, ciphers[0].CollectionIDs)
	require.Len(t, ciphers[0].Attachments, 1)
	assert.Equal(t, "f.txt", ciphers[0].Attachments[0].FileName)
	assert.Equal(t, models.CipherTypeLogin, ciphers[0].Type)

	assert.Nil(t, ciphers[1].OrganizationID)
	assert.Equal(t, "folder-1", *ciphers[1].FolderID)
	assert.Nil(t, ciphers[1].CollectionIDs)
	assert.Nil(t, ciphers[1].Attachments)
	assert.Equal(t, models.CipherTypeSecureNote, ciphers[1].Type)
}

func TestGetCiphers_QueryError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM ciphers").WillReturnError(errors.New("boom"))

	_, err := repo.GetCiphers(context.Background(), "u1")
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetCiphers_BadJSONColumn(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := cipherRows().AddRow("c1", nil, nil, 1, "x", nil, `{broken`, `[]`, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM ciphers").WillReturnRows(rows)

	_, err := repo.GetCiphers(context.Background(), "u1")
	require.ErrorIs(t, err, ErrEncodingColumn)
}

func TestGetCipher_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM ciphers").WithArgs("missing", "u1").WillReturnRows(cipherRows())

	_, err := repo.GetCipher(context.Background(), "u1", "missing")
	require.ErrorIs(t, err, ErrCipherNotFound)
}

// ── SaveCipher ────────────────────────────────────────────────────────────────

func TestSaveCipher_Upserts(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphers (.+) ON CONFLICT").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveCipher(context.Background(), "u1", models.Cipher{ID: "c1", Name: "x"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCipher_ExecError(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO ciphers").WillReturnError(errors.New("readonly"))

	err := repo.SaveCipher(context.Background(), "u1", models.Cipher{ID: "c1"})
	require.ErrorIs(t, err, ErrExecutingStatement)
}

// ── GetCollections / GetFolders ───────────────────────────────────────────────

func TestGetCollections(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(collectionColumns).
		AddRow("col-1", "org-1", "Devs", false).
		AddRow("col-2", "org-1", "Ops", true)
	mock.ExpectQuery("SELECT (.+) FROM collections").WithArgs("u1").WillReturnRows(rows)

	got, err := repo.GetCollections(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.Collection{
		{ID: "col-1", OrganizationID: "org-1", Name: "Devs"},
		{ID: "col-2", OrganizationID: "org-1", Name: "Ops", ReadOnly: true},
	}, got)
}

func TestGetFolders(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	rev := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(folderColumns).AddRow("f1", "Work", rev)
	mock.ExpectQuery("SELECT (.+) FROM folders").WithArgs("u1").WillReturnRows(rows)

	got, err := repo.GetFolders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.Folder{{ID: "f1", Name: "Work", RevisionDate: rev}}, got)
}
