package cmdutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type testItem struct {
	ID    int
	Title string
}

const testItemSchema = `CREATE TABLE IF NOT EXISTS test_items (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL
)`

func testItemToMap(item testItem) map[string]any {
	return map[string]any{"id": item.ID, "title": item.Title}
}

func TestWriteToDatastore_Disabled(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	viper.Set("datasette.enabled", false)
	viper.Set("datasette.dbfile", dbPath)

	err := WriteToDatastore([]testItem{{ID: 1, Title: "a"}}, testItemSchema, "test_items", "test items", testItemToMap)
	require.NoError(t, err)

	// Disabled means nothing was created
	_, statErr := sql.Open("sqlite", dbPath)
	require.NoError(t, statErr)
}

func TestWriteToDatastore_Local(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	viper.Set("datasette.enabled", true)
	viper.Set("datasette.mode", "local")
	viper.Set("datasette.dbfile", dbPath)

	items := []testItem{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}
	require.NoError(t, WriteToDatastore(items, testItemSchema, "test_items", "test items", testItemToMap))

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM test_items").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestWriteToDatastore_InvalidMode(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("datasette.enabled", true)
	viper.Set("datasette.mode", "carrier-pigeon")

	err := WriteToDatastore([]testItem{{ID: 1}}, testItemSchema, "test_items", "test items", testItemToMap)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Datasette mode")
}
