package web

import (
	"encoding/json"
	"net/http"
)

// healthResponse represents the response for the health check endpoint
type healthResponse struct {
	Status string `json:"status"`
}

// handleHealth reports process liveness
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(healthResponse{Status: "UP"})
}
