package storage

import (
	"database/sql"
	"fmt"
)

// schemaStatements creates the raw-SQL tables on a fresh database. The
// proposals table is managed separately by GORM AutoMigrate.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'vendedor',
		suspended BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS session (
		user_id INTEGER NOT NULL REFERENCES users(id),
		session_id TEXT PRIMARY KEY,
		host_name TEXT NOT NULL DEFAULT '',
		ip_address TEXT NOT NULL DEFAULT '',
		timestp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL,
		refresh_token TEXT NOT NULL DEFAULT '',
		refresh_token_expires_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cities (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		state TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS city_climate (
		id SERIAL PRIMARY KEY,
		city_id INTEGER NOT NULL REFERENCES cities(id),
		month TEXT NOT NULL,
		temperature DOUBLE PRECISION NOT NULL,
		solar_radiation DOUBLE PRECISION NOT NULL DEFAULT 0,
		wind_speed DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS machine_catalog (
		id SERIAL PRIMARY KEY,
		period TEXT NOT NULL,
		model TEXT NOT NULL,
		capacity_kw DOUBLE PRECISION NOT NULL,
		flow_m3h DOUBLE PRECISION NOT NULL DEFAULT 0,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS gas_heater_catalog (
		id SERIAL PRIMARY KEY,
		model TEXT NOT NULL,
		power_kcal_h DOUBLE PRECISION NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS solar_collector_catalog (
		id SERIAL PRIMARY KEY,
		model TEXT NOT NULL,
		area_m2 DOUBLE PRECISION NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,
}

// EnsureSchema creates the tables the raw storage layer expects.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
