package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/healthplus-lab/lab-chatbot-backend/internal/booking"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/catalog"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/chat"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/clinic"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/ledger"
	"github.com/healthplus-lab/lab-chatbot-backend/internal/offers"
	"github.com/healthplus-lab/lab-chatbot-backend/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := logging.Default()
	cat := catalog.Default()
	info := clinic.DefaultInfo()
	store := ledger.NewMemoryStore()

	bookingSvc := booking.NewService(cat, store, nil, time.Second, logger)
	chatSvc := chat.NewService(chat.NewRuleResponder(cat, info), chat.SourceRules, time.Second, nil, logger)

	return New(&Config{
		Logger:         logger,
		CatalogHandler: catalog.NewHandler(cat),
		ClinicHandler:  clinic.NewHandler(info),
		ChatHandler:    chat.NewHandler(chatSvc, logger),
		BookingHandler: booking.NewHandler(bookingSvc, logger),
		OffersHandler:  offers.NewHandler(store, time.Second, logger),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestRouter(t)
	w := doJSON(t, h, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestListTestsEndpoint(t *testing.T) {
	h := newTestRouter(t)
	w := doJSON(t, h, http.MethodGet, "/api/tests", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp catalog.ListTestsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Tests) != 3 {
		t.Fatalf("expected 3 tests, got %d", len(resp.Tests))
	}
}

func TestLabInfoEndpoint(t *testing.T) {
	h := newTestRouter(t)
	w := doJSON(t, h, http.MethodGet, "/api/labinfo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var info clinic.Info
	if err := json.NewDecoder(w.Body).Decode(&info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if info.Name == "" {
		t.Error("expected lab name in response")
	}
}

func TestBookingsUnlockOffers(t *testing.T) {
	h := newTestRouter(t)

	var last booking.Result
	for i := 1; i <= 3; i++ {
		w := doJSON(t, h, http.MethodPost, "/api/book", booking.Request{
			Name:   "Asha",
			Phone:  "+911234567890",
			TestID: "blood",
			Date:   fmt.Sprintf("2026-09-%02d", i),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("booking %d: expected status %d, got %d: %s", i, http.StatusOK, w.Code, w.Body.String())
		}
		if err := json.NewDecoder(w.Body).Decode(&last); err != nil {
			t.Fatalf("booking %d: failed to decode response: %v", i, err)
		}
	}

	if last.Offer != offers.DiscountOffer {
		t.Errorf("expected discount offer on third booking, got %q", last.Offer)
	}

	w := doJSON(t, h, http.MethodGet, "/api/offers?name=Asha", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp offers.OffersResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Bookings != 3 {
		t.Errorf("expected 3 bookings, got %d", resp.Bookings)
	}
	if resp.Offer != offers.DiscountOffer {
		t.Errorf("expected discount offer, got %q", resp.Offer)
	}
}

func TestInvalidBookingLeavesNoTrace(t *testing.T) {
	h := newTestRouter(t)

	w := doJSON(t, h, http.MethodPost, "/api/book", booking.Request{
		Name:   "Vikram",
		Phone:  "+911112223334",
		TestID: "xray",
		Date:   "2026-09-01",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	w = doJSON(t, h, http.MethodGet, "/api/offers?name=Vikram", nil)
	var resp offers.OffersResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Bookings != 0 {
		t.Errorf("failed booking must not count, got %d", resp.Bookings)
	}
	if resp.Offer != offers.NoOfferMessage {
		t.Errorf("expected no-offer message, got %q", resp.Offer)
	}
}

func TestChatEndpoint(t *testing.T) {
	h := newTestRouter(t)

	w := doJSON(t, h, http.MethodPost, "/api/chat", chat.ChatRequest{
		User:    "Asha",
		Message: "what are your prices?",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	var resp chat.ChatResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Reply == "" {
		t.Error("expected non-empty reply")
	}
}
