package datastore

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "letterfin.db")

	store := NewSQLiteStore(dbPath)
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	schema := `CREATE TABLE IF NOT EXISTS reviews (
		user TEXT,
		rating TEXT,
		contains_spoilers BOOLEAN,
		likes_count INTEGER
	)`
	require.NoError(t, store.CreateTable(schema))

	records := []map[string]any{
		{"user": "moviefan", "rating": "4.5", "contains_spoilers": false, "likes_count": 12},
		{"user": "cinephile", "rating": "", "contains_spoilers": true, "likes_count": nil},
	}
	require.NoError(t, store.BatchInsert("letterfin", "reviews", records))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM reviews").Scan(&count))
	assert.Equal(t, 2, count)

	var rating string
	require.NoError(t, db.QueryRow("SELECT rating FROM reviews WHERE user = ?", "moviefan").Scan(&rating))
	assert.Equal(t, "4.5", rating)
}

func TestSQLiteStoreBatchInsertEmpty(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, store.Connect())
	defer func() { _ = store.Close() }()

	// No records means no table access at all
	require.NoError(t, store.BatchInsert("letterfin", "reviews", nil))
}
