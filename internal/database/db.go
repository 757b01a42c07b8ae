package database

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DataStore is the interface for data persistence
type DataStore interface {
	Close() error
	HealthCheck(ctx context.Context) error
	Cities() CityRepository
	Settings() SettingsRepository
}

// DB wraps the database connection and provides access to repositories
type DB struct {
	conn               *sql.DB
	cityRepository     CityRepository
	settingsRepository SettingsRepository
}

// New creates a new database connection and runs migrations
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{
		conn:               conn,
		cityRepository:     &cityRepository{db: conn},
		settingsRepository: &settingsRepository{db: conn},
	}, nil
}

// Cities returns the city repository
func (db *DB) Cities() CityRepository { return db.cityRepository }

// Settings returns the settings repository
func (db *DB) Settings() SettingsRepository { return db.settingsRepository }

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// HealthCheck verifies the database connection is alive
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// runMigrations executes the schema SQL
func runMigrations(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}
