package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the subset of pgxpool.Pool the store needs. It matches
// pgxmock's pool interface so tests can inject a mock.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore persists the ledger in the bookings and customers tables.
type PostgresStore struct {
	db querier
}

// NewPostgresStore creates a store backed by a pgx pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	if pool == nil {
		panic("ledger: pgx pool required")
	}
	return &PostgresStore{db: pool}
}

// NewPostgresStoreWithQuerier allows injecting mocks for tests.
func NewPostgresStoreWithQuerier(q querier) *PostgresStore {
	return &PostgresStore{db: q}
}

// RecordBooking appends a booking row; the id comes from the sequence.
func (s *PostgresStore) RecordBooking(ctx context.Context, name, phone, testID, date string) (*BookingRecord, error) {
	query := `
		INSERT INTO bookings (name, phone, test, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	rec := &BookingRecord{
		Name:   name,
		Phone:  phone,
		TestID: testID,
		Date:   date,
	}
	if err := s.db.QueryRow(ctx, query, name, phone, testID, date).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("ledger: insert booking: %w", err)
	}
	return rec, nil
}

// BumpLoyalty increments the counter with a single upsert so concurrent
// bookings for the same name cannot lose updates.
func (s *PostgresStore) BumpLoyalty(ctx context.Context, name string) (int, error) {
	query := `
		INSERT INTO customers (name, bookings)
		VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET bookings = customers.bookings + 1
		RETURNING bookings
	`
	var count int
	if err := s.db.QueryRow(ctx, query, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("ledger: bump loyalty: %w", err)
	}
	return count, nil
}

// GetLoyalty reads the counter; unknown names report zero bookings.
func (s *PostgresStore) GetLoyalty(ctx context.Context, name string) (int, error) {
	query := `SELECT bookings FROM customers WHERE name = $1`
	var count int
	if err := s.db.QueryRow(ctx, query, name).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("ledger: get loyalty: %w", err)
	}
	return count, nil
}
