// Package testutil provides the in-memory SQLite database used by the test
// suites, so store, resolver, and seeding behavior can be exercised without a
// running Postgres. The production SQL sticks to the dialect subset both
// engines share ($N placeholders, RETURNING, application-side timestamps).
package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Schema mirrors migrations/001_init.sql in SQLite dialect. The two telemetry
// tables carry no device FK on either engine.
const Schema = `
CREATE TABLE sites (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	address TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE rooms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	site_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE devices (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	room_id INTEGER NOT NULL,
	name TEXT NOT NULL,
	device_type TEXT NOT NULL,
	unique_identifier TEXT,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE sensor_readings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL,
	value TEXT NOT NULL,
	unit TEXT,
	timestamp TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE control_setpoints (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id INTEGER NOT NULL,
	setpoint_type TEXT NOT NULL,
	value TEXT NOT NULL,
	unit TEXT,
	timestamp TIMESTAMP NOT NULL,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
`

// NewSQLiteDB opens a fresh in-memory database with the schema applied.
// MaxOpenConns(1) keeps the pool on the single connection that owns the
// in-memory state.
func NewSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(Schema)
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}
