package db

// SchemaSQL is the complete schema for fresh guardpost installs.
//
// State is deliberately two opaque records, not relational tables: the
// whole roster/ledger is one value and the settings another, each
// overwritten in full on every mutation. This mirrors the storage contract
// the rest of the code is written against (read whole, write whole,
// last writer wins).
const SchemaSQL = `
-- Records (whole-object key-value state)
CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema. Tests create in-memory
// databases from this to prevent drift between test and production schemas.
func GetSchemaSQL() string {
	return SchemaSQL
}
