// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	applied, err := Migrate(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNilDB)
	assert.Zero(t, applied)
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// sqlmock без ожиданий отвечает ошибкой на любой запрос goose
	_, err = Migrate(context.Background(), db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations: apply")
}

func TestMigrate_SQLiteCreatesTables(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	applied, err := Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	// повторный запуск ничего не применяет
	applied, err = Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Zero(t, applied)

	for _, table := range []string{"ciphers", "folders", "collections", "accounts", "saved_state"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "таблица %s не создана", table)
	}
}

func TestMigrate_DropsPlaintextTokens(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	// база до перехода на зашифрованные токены
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, schema)
	require.NoError(t, err)
	_, err = provider.UpTo(ctx, 2)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO accounts (user_id, email, name, premium, organizations, access_token, refresh_token, active)
		VALUES ('u1', 'a@example.com', 'A', 1, '[]', 'plain-access', 'plain-refresh', 1)`)
	require.NoError(t, err)

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 1, applied)

	var (
		email           string
		premium, active bool
		access, refresh []byte
	)
	err = db.QueryRowContext(ctx, `SELECT email, premium, active, access_token, refresh_token FROM accounts WHERE user_id = 'u1'`).
		Scan(&email, &premium, &active, &access, &refresh)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)
	assert.True(t, premium)
	assert.False(t, active, "аккаунт входит заново")
	assert.Empty(t, access)
	assert.Empty(t, refresh)
}
