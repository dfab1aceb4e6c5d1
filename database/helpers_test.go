package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// newTestDB provisions a fresh SQLite file with AutoMigrateModels and opens it
// the way the importer does.
func newTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "hackers.db")

	gdb, err := InitGormDB(path, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, AutoMigrateModels(gdb))
	gormSQL, err := gdb.DB()
	require.NoError(t, err)
	require.NoError(t, gormSQL.Close())

	db, err := InitDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, path
}

func countRows(t *testing.T, db Querier, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}
