package offers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/ledger"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

// Handler answers loyalty-status queries from the ledger.
type Handler struct {
	store          ledger.Store
	logger         *logging.Logger
	storageTimeout time.Duration
}

// NewHandler creates an offers handler.
func NewHandler(store ledger.Store, storageTimeout time.Duration, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:          store,
		logger:         logger,
		storageTimeout: storageTimeout,
	}
}

// OffersResponse is the response for GET /api/offers.
type OffersResponse struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
	Offer    string `json:"offer"`
}

// GetOffers handles GET /api/offers?name= requests
func (h *Handler) GetOffers(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if h.storageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.storageTimeout)
		defer cancel()
	}

	bookings, err := h.store.GetLoyalty(ctx, name)
	if err != nil {
		h.logger.Error("failed to read loyalty", "error", err, "name", name)
		http.Error(w, "failed to read loyalty status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(OffersResponse{
		Name:     name,
		Bookings: bookings,
		Offer:    Describe(bookings),
	})
}
