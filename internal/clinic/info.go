package clinic

import (
	"encoding/json"
	"net/http"
)

// Info is the lab's public metadata, served as-is to the booking widget.
type Info struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	GoogleMap string `json:"google_map"`
}

// DefaultInfo returns the lab metadata for the production deployment.
func DefaultInfo() Info {
	return Info{
		Name:      "HealthPlus Medical Lab",
		Address:   "123 Main Road, New Delhi, India",
		GoogleMap: "https://maps.google.com/?q=HealthPlus+Medical+Lab+New+Delhi",
	}
}

// Handler serves lab metadata.
type Handler struct {
	info Info
}

// NewHandler creates a clinic info handler.
func NewHandler(info Info) *Handler {
	return &Handler{info: info}
}

// GetInfo handles GET /api/labinfo requests
func (h *Handler) GetInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.info)
}
