// SPDX-License-Identifier: MIT

package storage

import "fmt"

// migrate creates the snapshot schema if it doesn't exist.
func (db *DB) migrate() error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	db.logger.Debug("database migrations applied")
	return nil
}

// Row ids mirror table order: stops.id is the stop's position in the stop
// table, distances.seq the insertion order of the directed pair.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS stops (
		id   INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		lat  REAL NOT NULL,
		lng  REAL NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS buses (
		id           INTEGER PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		is_roundtrip INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS bus_stops (
		bus_id  INTEGER NOT NULL REFERENCES buses(id) ON DELETE CASCADE,
		seq     INTEGER NOT NULL,
		stop_id INTEGER NOT NULL REFERENCES stops(id),
		PRIMARY KEY (bus_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS distances (
		seq     INTEGER PRIMARY KEY,
		from_id INTEGER NOT NULL REFERENCES stops(id),
		to_id   INTEGER NOT NULL REFERENCES stops(id),
		meters  REAL NOT NULL,
		UNIQUE (from_id, to_id)
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value REAL NOT NULL
	)`,
}
