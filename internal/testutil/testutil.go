package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vytor/eligesaludable/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied,
// seed data included. The pool holds a single connection so every caller
// sees the same in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.Open(db.Options{Path: ":memory:", MaxOpenConns: 1})
	require.NoError(t, err)
	return database.DB
}

// NewFileTestDB creates a migrated SQLite database file in a temporary
// directory with a pool of maxOpenConns connections, so concurrent callers
// contend on SQLite's write lock instead of on a single pooled connection.
func NewFileTestDB(t *testing.T, maxOpenConns int) *sql.DB {
	t.Helper()
	database, err := db.Open(db.Options{
		Path:          "file:" + filepath.Join(t.TempDir(), "elige.db"),
		MaxOpenConns:  maxOpenConns,
		BusyTimeoutMS: 10000,
	})
	require.NoError(t, err)
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// InsertPlayer creates a jugador row and returns its id.
func InsertPlayer(t *testing.T, sqlDB *sql.DB, name string, maxScore int) int64 {
	t.Helper()
	res, err := sqlDB.ExecContext(context.Background(),
		`INSERT INTO jugador (nombre, puntuacion_maxima) VALUES (?, ?)`, name, maxScore)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// InsertFinishedSession creates an already finalized partida with the given score.
func InsertFinishedSession(t *testing.T, sqlDB *sql.DB, playerID int64, score int) int64 {
	t.Helper()
	start := time.Now().UTC().Add(-time.Minute)
	res, err := sqlDB.ExecContext(context.Background(), `
INSERT INTO partida (jugador_id, fecha_inicio, fecha_fin, puntuacion_total)
VALUES (?, ?, ?, ?)
`, playerID, start, start.Add(30*time.Second), score)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
