// Package sqlkv implements kv.Backend on a SQL table, for MySQL or PostgreSQL.
package sqlkv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"todo/internal/kv"
)

// TableName is the table holding slots.
const TableName = "todo_slots"

// Dialect captures the SQL differences between supported databases.
type Dialect struct {
	// Name is the user-facing driver name ("mysql" or "postgres").
	Name string
	// Driver is the database/sql driver name.
	Driver string

	createTable string
	selectValue string
	upsertValue string
}

// Supported dialects.
var (
	MySQL = Dialect{
		Name:   "mysql",
		Driver: "mysql",
		createTable: `CREATE TABLE IF NOT EXISTS ` + TableName + ` (
    slot_key VARCHAR(191) PRIMARY KEY,
    slot_value LONGTEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		selectValue: `SELECT slot_value FROM ` + TableName + ` WHERE slot_key = ?`,
		upsertValue: `INSERT INTO ` + TableName + ` (slot_key, slot_value, updated_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE slot_value = VALUES(slot_value), updated_at = VALUES(updated_at)`,
	}

	Postgres = Dialect{
		Name:   "postgres",
		Driver: "pgx",
		createTable: `CREATE TABLE IF NOT EXISTS ` + TableName + ` (
    slot_key TEXT PRIMARY KEY,
    slot_value TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		selectValue: `SELECT slot_value FROM ` + TableName + ` WHERE slot_key = $1`,
		upsertValue: `INSERT INTO ` + TableName + ` (slot_key, slot_value, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (slot_key) DO UPDATE SET slot_value = EXCLUDED.slot_value, updated_at = EXCLUDED.updated_at`,
	}
)

// LookupDialect maps a driver name to its Dialect.
// "postgresql" and "pgx" are accepted as aliases for postgres.
func LookupDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported sql driver: %q", name)
	}
}

// Store is a kv.Backend on a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open connects with the given driver name and DSN, pings, and creates the
// slot table if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	dialect, err := LookupDialect(driver)
	if err != nil {
		return nil, err
	}
	if dsn == "" {
		return nil, errors.New("sql dsn is empty")
	}
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", dialect.Name, err)
	}
	s := New(db, dialect)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. The caller owns migration.
func New(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Migrate creates the slot table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable); err != nil {
		return fmt.Errorf("create %s: %w", TableName, err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error { return s.db.Close() }

// Get implements kv.Backend.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.dialect.selectValue, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kv.ErrNotExist
		}
		return nil, fmt.Errorf("read slot %s: %w", key, err)
	}
	return []byte(value), nil
}

// Put implements kv.Backend.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, s.dialect.upsertValue, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}
