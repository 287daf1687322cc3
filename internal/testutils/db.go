// Package testutils provides database helpers for integration tests. Tests
// that need a real PostgreSQL instance call GetTestDB, which skips the test
// when no database is configured, so the unit suite stays runnable without
// external services.
//
// Transaction isolation pattern: each test runs inside a transaction that is
// rolled back when the test completes, so tests can run in parallel against
// shared tables without cleanup.
package testutils

import (
	"database/sql"
	"os"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskboard-api/migrations"
)

// migrationsOnce ensures migrations run once across the whole test binary.
var migrationsOnce sync.Once

// DatabaseURLEnv is the environment variable holding the test database URL.
const DatabaseURLEnv = "TASKBOARD_TEST_DATABASE_URL"

// GetTestDB opens a connection to the integration-test database and applies
// the embedded migrations. The test is skipped when DatabaseURLEnv is unset.
// The connection is closed via t.Cleanup.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(DatabaseURLEnv)
	if url == "" {
		t.Skipf("skipping: %s not set", DatabaseURLEnv)
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Ping())

	migrationsOnce.Do(func() {
		goose.SetBaseFS(migrations.FS)
		require.NoError(t, goose.SetDialect("postgres"))
		require.NoError(t, goose.Up(db, "."))
	})

	return db
}

// WithTx runs fn inside a transaction that is rolled back afterwards, so the
// database is left untouched regardless of what fn does.
func WithTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	fn(tx)
}
