// Package datastore writes extracted records to Datasette-compatible
// storage: a local SQLite file or a remote Datasette instance with the
// datasette-insert plugin.
package datastore

// Store is the destination for extracted review and availability records.
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert inserts multiple records into the specified table
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}
