package ledger

import "time"

// BookingRecord is an append-only booking fact. IDs are assigned sequentially
// by the store; records are never updated or deleted.
type BookingRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	TestID    string    `json:"test_id"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}
