package ledger

import "context"

// Store is the persistence layer for booking facts and loyalty counters.
// The key for a loyalty counter is the exact customer name string as
// submitted; the store performs no normalization or dedup.
type Store interface {
	// RecordBooking appends a booking record with a fresh sequential id.
	RecordBooking(ctx context.Context, name, phone, testID, date string) (*BookingRecord, error)

	// BumpLoyalty atomically creates-or-increments the customer's booking
	// counter and returns the resulting count. Concurrent bumps for the same
	// name must not lose updates; bumps for different names must not block
	// each other.
	BumpLoyalty(ctx context.Context, name string) (int, error)

	// GetLoyalty returns the customer's booking count, 0 for unknown names.
	GetLoyalty(ctx context.Context, name string) (int, error)
}
