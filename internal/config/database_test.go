package config

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	cfg := LoadConfig()
	cfg.Database.Driver = DriverSQLite
	cfg.Database.Path = ":memory:"

	db, err := SetupDatabase(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSetupDatabaseRejectsUnknownDriver(t *testing.T) {
	cfg := LoadConfig()
	cfg.Database.Driver = "oracle"

	_, err := SetupDatabase(cfg)
	assert.Error(t, err)
}

func TestBootstrapSeedsDefaultExpenseTypes(t *testing.T) {
	db := setupTestDB(t)

	var descriptions []string
	err := db.Select(&descriptions, "SELECT description FROM expense_types ORDER BY description")
	require.NoError(t, err)
	assert.Len(t, descriptions, len(SeedExpenseTypes))
	for _, want := range SeedExpenseTypes {
		assert.Contains(t, descriptions, want)
	}
}

func TestBootstrapNeverReseedsDeletedCategories(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec("DELETE FROM expense_types WHERE description = 'Food'")
	require.NoError(t, err)

	// A restart runs Bootstrap again; the deleted category must stay gone.
	require.NoError(t, Bootstrap(db))

	var count int
	err = db.Get(&count, "SELECT COUNT(*) FROM expense_types WHERE description = 'Food'")
	require.NoError(t, err)
	assert.Zero(t, count, "a deleted default category must not come back")

	var total int
	err = db.Get(&total, "SELECT COUNT(*) FROM expense_types")
	require.NoError(t, err)
	assert.Equal(t, len(SeedExpenseTypes)-1, total)
}

func TestBootstrapIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Bootstrap(db))
	require.NoError(t, Bootstrap(db))

	var total int
	err := db.Get(&total, "SELECT COUNT(*) FROM expense_types")
	require.NoError(t, err)
	assert.Equal(t, len(SeedExpenseTypes), total)
}
