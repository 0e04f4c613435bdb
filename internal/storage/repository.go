package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"billtracker/internal/core"

	_ "modernc.org/sqlite"
)

// MemoryDSN keeps the database inside the process; it is gone once the
// repository is closed.
const MemoryDSN = ":memory:"

const (
	upsertBill = `INSERT INTO bills (name, amount) VALUES (?, ?)
ON CONFLICT(name) DO UPDATE SET amount = excluded.amount`
	listBills  = `SELECT name, amount FROM bills ORDER BY name`
	updateBill = `UPDATE bills SET amount = ? WHERE name = ? RETURNING name, amount`
	deleteBill = `DELETE FROM bills WHERE name = ? RETURNING name, amount`
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// Every pooled connection to ":memory:" is its own database, so the
	// pool is pinned to one connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Add implements store.BillWriter
func (r *SQLiteRepository) Add(ctx context.Context, b core.Bill) error {
	if err := b.Validate(); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, upsertBill, b.Name, b.Amount); err != nil {
		return fmt.Errorf("upsert bill: %w", err)
	}

	slog.DebugContext(ctx, "Bill saved to SQLite", "bill_name", b.Name, "amount", b.Amount)
	return nil
}

// List implements store.BillLister
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Bill, error) {
	rows, err := r.db.QueryContext(ctx, listBills)
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer rows.Close()

	bills := []core.Bill{}
	for rows.Next() {
		var b core.Bill
		if err := rows.Scan(&b.Name, &b.Amount); err != nil {
			return nil, fmt.Errorf("scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bills: %w", err)
	}

	return bills, nil
}

// Update implements store.BillEditor
func (r *SQLiteRepository) Update(ctx context.Context, name string, amount float64) (core.Bill, bool, error) {
	var b core.Bill
	err := r.db.QueryRowContext(ctx, updateBill, amount, name).Scan(&b.Name, &b.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Bill{}, false, nil
	}
	if err != nil {
		return core.Bill{}, false, fmt.Errorf("update bill %q: %w", name, err)
	}

	slog.DebugContext(ctx, "Bill updated in SQLite", "bill_name", b.Name, "amount", b.Amount)
	return b, true, nil
}

// Remove implements store.BillEditor
func (r *SQLiteRepository) Remove(ctx context.Context, name string) (core.Bill, bool, error) {
	var b core.Bill
	err := r.db.QueryRowContext(ctx, deleteBill, name).Scan(&b.Name, &b.Amount)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Bill{}, false, nil
	}
	if err != nil {
		return core.Bill{}, false, fmt.Errorf("delete bill %q: %w", name, err)
	}

	slog.DebugContext(ctx, "Bill removed from SQLite", "bill_name", b.Name)
	return b, true, nil
}
