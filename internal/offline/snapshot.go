// Package offline persists the last successful expense collection fetch so
// the list still renders when the API is unreachable. It is a write-behind
// copy of cache results, never a source of truth for mutations.
package offline

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migsqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"expensetrack/internal/api"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Snapshot stores one expense collection in sqlite.
type Snapshot struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database and applies
// migrations.
func Open(path string) (*Snapshot, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate snapshot db: %w", err)
	}
	return &Snapshot{db: db}, nil
}

func (s *Snapshot) Close() error { return s.db.Close() }

func runMigrations(db *sql.DB) error {
	driver, err := migsqlite.WithInstance(db, &migsqlite.Config{})
	if err != nil {
		return err
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// Save replaces the stored collection with records.
func (s *Snapshot) Save(ctx context.Context, records []api.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, e := range records {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO expenses(id, user_id, amount, category, date, notes, receipt_url, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?);
		`, e.ID, e.UserID, e.Amount, e.Category, e.Date, e.Notes, e.ReceiptURL, e.CreatedAt)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta(key, value) VALUES('fetched_at', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Load returns the stored collection and when it was fetched. A zero time
// means no snapshot has been written yet.
func (s *Snapshot) Load(ctx context.Context) ([]api.Expense, time.Time, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, user_id, amount, category, date, notes, receipt_url, created_at
	FROM expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer rows.Close()

	var out []api.Expense
	for rows.Next() {
		var e api.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Date, &e.Notes, &e.ReceiptURL, &e.CreatedAt); err != nil {
			return nil, time.Time{}, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, err
	}

	var fetched time.Time
	var raw string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM snapshot_meta WHERE key = 'fetched_at'`).Scan(&raw)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, time.Time{}, err
	default:
		fetched, _ = time.Parse(time.RFC3339, raw)
	}
	return out, fetched, nil
}
