// Copyright (c) 2026 Keymaster Team
// Dropin Demo - payment UI demo harness
// This source code is licensed under the MIT license found in the LICENSE file.

package merchant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/toeirei/dropindemo/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a customer or transaction does not exist.
var ErrNotFound = errors.New("not found")

// sqlOpenFunc is swapped in tests.
var sqlOpenFunc = sql.Open

// Store persists customers and transactions for the demo server.
type Store struct {
	bun *bun.DB
}

// OpenStore opens dbType ("sqlite", "postgres" or "mysql") at dsn and makes
// sure the tables exist.
func OpenStore(ctx context.Context, dbType, dsn string) (*Store, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx"; map "postgres" to that driver.
	if dbType == "postgres" {
		driverName = "pgx"
	}
	switch dbType {
	case "sqlite", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database type: '%s'", dbType)
	}

	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// An in-memory SQLite database only exists on the connection that created it.
	if dbType == "sqlite" && (dsn == ":memory:" || dsn == "file::memory:") {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	s := &Store{bun: createBunDB(sqlDB, dbType)}
	if err := s.createTables(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	logging.Debugf("merchant store: opened %s in %s", dbType, time.Since(start))
	return s, nil
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func (s *Store) createTables(ctx context.Context) error {
	for _, m := range []interface{}{(*Customer)(nil), (*Transaction)(nil)} {
		if _, err := s.bun.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.bun.Close()
}

// AddCustomer inserts a customer with the given id.
func (s *Store) AddCustomer(ctx context.Context, id string) (*Customer, error) {
	c := &Customer{ID: id, CreatedAt: time.Now().UTC()}
	if _, err := s.bun.NewInsert().Model(c).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}
	return c, nil
}

// GetCustomer looks a customer up by id.
func (s *Store) GetCustomer(ctx context.Context, id string) (*Customer, error) {
	var c Customer
	err := s.bun.NewSelect().Model(&c).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// AddTransaction records a transaction. CreatedAt is filled when zero.
func (s *Store) AddTransaction(ctx context.Context, t *Transaction) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	if _, err := s.bun.NewInsert().Model(t).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction looks a transaction up by id.
func (s *Store) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	var t Transaction
	err := s.bun.NewSelect().Model(&t).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns the newest transactions first; limit <= 0 means all.
func (s *Store) ListTransactions(ctx context.Context, limit int) ([]Transaction, error) {
	var out []Transaction
	q := s.bun.NewSelect().Model(&out).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
