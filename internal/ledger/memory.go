package ledger

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps the ledger in process memory. It backs local development
// when no DATABASE_URL is configured, and tests. State is lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	records  []BookingRecord
	counters map[string]int
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		counters: make(map[string]int),
	}
}

// RecordBooking appends a booking record under the store lock.
func (s *MemoryStore) RecordBooking(ctx context.Context, name, phone, testID, date string) (*BookingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := BookingRecord{
		ID:        s.nextID,
		Name:      name,
		Phone:     phone,
		TestID:    testID,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.records = append(s.records, rec)
	return &rec, nil
}

// BumpLoyalty increments the counter under the store lock.
func (s *MemoryStore) BumpLoyalty(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[name]++
	return s.counters[name], nil
}

// GetLoyalty reads the counter; unknown names report zero bookings.
func (s *MemoryStore) GetLoyalty(ctx context.Context, name string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.counters[name], nil
}

// Bookings returns a snapshot of all booking records, oldest first.
func (s *MemoryStore) Bookings() []BookingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]BookingRecord, len(s.records))
	copy(out, s.records)
	return out
}
