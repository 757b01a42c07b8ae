package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatabase(t *testing.T) {
	db := setupTestDB(t)
	assert.NotNil(t, db)
	assert.NotNil(t, db.Cities())
	assert.NotNil(t, db.Settings())
}

func TestHealthCheck(t *testing.T) {
	db := setupTestDB(t)

	err := db.HealthCheck(context.Background())
	assert.NoError(t, err)
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)

	err = db.Close()
	require.NoError(t, err)

	err = db.HealthCheck(context.Background())
	assert.Error(t, err)
}

func TestDatabaseMigrations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Settings table exists and yields defaults.
	settings, err := db.Settings().Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, DefaultAlgorithm, settings.DefaultAlgorithm)
	assert.False(t, settings.UseMiles)

	// Cities table exists and starts empty.
	cities, err := db.Cities().List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, cities)
}

func TestNewDatabaseInvalidPath(t *testing.T) {
	_, err := New("/non/existent/path/db.sqlite")
	assert.Error(t, err)
}
