package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/ledger"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/observability/metrics"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/offers"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

// Service validates bookings against the catalog, appends them to the ledger
// and recomputes the customer's loyalty standing.
type Service struct {
	catalog        *catalog.Catalog
	store          ledger.Store
	metrics        *metrics.APIMetrics
	logger         *logging.Logger
	storageTimeout time.Duration
}

// NewService creates a booking service.
func NewService(c *catalog.Catalog, store ledger.Store, m *metrics.APIMetrics, storageTimeout time.Duration, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		catalog:        c,
		store:          store,
		metrics:        m,
		logger:         logger,
		storageTimeout: storageTimeout,
	}
}

// Book records a booking and returns the composed result. The booking insert
// and the loyalty increment are two separate writes: a failed increment after
// a successful insert leaves the record without a counter bump.
func (s *Service) Book(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	test, ok := s.catalog.Lookup(req.TestID)
	if !ok {
		s.metrics.ObserveBooking("invalid_test", time.Since(start).Seconds())
		return nil, fmt.Errorf("%w: %s", ErrUnknownTest, req.TestID)
	}

	rec, err := s.recordBooking(ctx, req)
	if err != nil {
		s.metrics.ObserveBooking("storage_error", time.Since(start).Seconds())
		return nil, err
	}

	count, err := s.bumpLoyalty(ctx, req.Name)
	if err != nil {
		s.metrics.ObserveBooking("storage_error", time.Since(start).Seconds())
		return nil, err
	}

	s.logger.Info("booking recorded",
		"id", rec.ID,
		"name", req.Name,
		"test_id", req.TestID,
		"date", req.Date,
		"bookings", count,
	)
	s.metrics.ObserveBooking("ok", time.Since(start).Seconds())

	return &Result{
		Status:     "ok",
		BookingFor: req.Name,
		Date:       req.Date,
		Test:       test,
		Bookings:   count,
		Offer:      offers.Describe(count),
	}, nil
}

func (s *Service) recordBooking(ctx context.Context, req Request) (*ledger.BookingRecord, error) {
	ctx, cancel := s.withStorageTimeout(ctx)
	defer cancel()
	return s.store.RecordBooking(ctx, req.Name, req.Phone, req.TestID, req.Date)
}

func (s *Service) bumpLoyalty(ctx context.Context, name string) (int, error) {
	ctx, cancel := s.withStorageTimeout(ctx)
	defer cancel()
	return s.store.BumpLoyalty(ctx, name)
}

func (s *Service) withStorageTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storageTimeout)
}
