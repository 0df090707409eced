package catalog

import (
	"encoding/json"
	"net/http"
)

// Handler serves the test catalog over HTTP.
type Handler struct {
	catalog *Catalog
}

// NewHandler creates a catalog handler.
func NewHandler(c *Catalog) *Handler {
	return &Handler{catalog: c}
}

// ListTestsResponse is the response for GET /api/tests.
type ListTestsResponse struct {
	Tests []Test `json:"tests"`
}

// ListTests handles GET /api/tests requests
func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListTestsResponse{Tests: h.catalog.List()})
}
