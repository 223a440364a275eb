package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/zefanya/apptrack/internal/types"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteComment sends a comment line, used as a keepalive.
func (s *SSEWriter) WriteComment(text string) error {
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

const keepaliveInterval = 30 * time.Second

// handleStreamApplications pushes the full sorted record list to the client
// whenever anything changes, mirroring a snapshot listener: one event on
// connect, then one per mutation. Signals are coalesced, so a burst of
// writes may produce a single snapshot.
func (s *Server) handleStreamApplications(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	changes, cancel := s.store.Hub().Subscribe(owner.Key())
	defer cancel()

	sendSnapshot := func() error {
		apps, err := s.store.ListApplications(r.Context(), owner)
		if err != nil {
			return err
		}
		if apps == nil {
			apps = []types.Application{}
		}
		return sse.WriteEvent("snapshot", map[string]any{
			"applications": apps,
			"total":        len(apps),
		})
	}

	if err := sendSnapshot(); err != nil {
		return
	}

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-changes:
			if err := sendSnapshot(); err != nil {
				return
			}
		case <-keepalive.C:
			if err := sse.WriteComment("keepalive"); err != nil {
				return
			}
		}
	}
}
