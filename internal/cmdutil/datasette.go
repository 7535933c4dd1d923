package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/albertdiaaz/letterfin/internal/datastore"
	"github.com/spf13/viper"
)

// WriteToDatastore writes records to the configured Datasette destination
// when datasette.enabled is set. mapper converts each record to a column map.
// Disabled Datasette is not an error; the call is simply a no-op.
func WriteToDatastore[T any](records []T, schema, table, label string, mapper func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	slog.Info("Writing to Datasette", "what", label, "count", len(records))

	rows := make([]map[string]any, len(records))
	for i, record := range records {
		rows[i] = mapper(record)
	}

	mode := viper.GetString("datasette.mode")
	if mode == "" {
		mode = "local"
	}

	var store datastore.Store
	switch mode {
	case "local":
		store = datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
	case "remote":
		store = datastore.NewDatasetteClient(
			viper.GetString("datasette.remote_url"),
			viper.GetString("datasette.api_token"),
		)
	default:
		return fmt.Errorf("invalid Datasette mode: %s", mode)
	}

	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.CreateTable(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	if err := store.BatchInsert("letterfin", table, rows); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	slog.Info("Successfully wrote records to Datasette", "what", label, "count", len(records))
	return nil
}
