package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type sessionRequest struct {
	// Token optionally carries a previous session token whose identity
	// should be resumed.
	Token string `json:"token"`
}

type sessionResponse struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// handleCreateSession starts a session. Without a token in the body the
// session is anonymous under a fresh user ID; with a valid previous token the
// same identity is resumed. First-time users get the starter dataset.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if r.Body != nil {
		// An empty or absent body means an anonymous session.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	userID := uuid.New()
	if req.Token != "" {
		claims, err := s.jwtService.ValidateToken(req.Token)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Invalid session token")
			return
		}
		userID = claims.GetUserID()
	}

	token, expiresAt, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	if s.seedOnFirstRun {
		owner := s.ownerFor(userID)
		seeded, err := s.store.EnsureSeed(r.Context(), owner)
		if err != nil {
			// Seeding is best-effort; the session is still valid.
			log.Printf("failed to seed user %s: %v", userID, err)
		} else if seeded {
			log.Printf("seeded starter dataset for user %s", userID)
		}
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse{
		UserID:    userID.String(),
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	})
}
