package playlist

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"openmusic-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": msg,
	})
}

// writeDomainError maps classified domain errors to their status code.
// Unclassified errors are storage faults: logged, surfaced as 500.
// Invariant violations also get a log line since they indicate an
// unexpected storage state, not routine validation.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	status := domain.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("playlist: %s: %v", op, err)
		writeError(w, status, "database error")
		return
	}
	if domain.IsInvariant(err) {
		log.Printf("playlist: %s: invariant violation: %v", op, err)
	}
	writeError(w, status, err.Error())
}

func (s *Server) publishEvent(ctx context.Context, eventType string, payload any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(map[string]any{
		"type":    eventType,
		"payload": payload,
	})
	if err != nil {
		log.Printf("playlist: marshal event: %v", err)
		return
	}
	if err := s.rdb.Publish(ctx, "broadcast", string(data)).Err(); err != nil {
		log.Printf("playlist: publish event: %v", err)
	}
}
