package server

import (
	"encoding/json"
	"net/http"
)

func (s *Service) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("failed to encode response body")
	}
}

// respondError writes the JSON error envelope. Underlying store messages
// pass through verbatim.
func (s *Service) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
