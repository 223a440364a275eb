package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/zefanya/apptrack/internal/seed"
)

func readAllLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxUploadBytes))
}

// Draft endpoints never fail on completion errors: the response carries
// either generated content or deterministic fallback content, flagged via
// "fallback". A 409 is returned while a draft of the same kind is already
// being generated for the record.

// handleDraftEmail generates a follow-up email for one record.
func (s *Server) handleDraftEmail(w http.ResponseWriter, r *http.Request) {
	owner, app, ok := s.getApplication(w, r)
	if !ok {
		return
	}

	if !s.busy.acquire("email", app.ID) {
		err := &ErrRecordBusy{ID: app.ID, Action: "email"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.busy.release("email", app.ID)

	profile, err := s.store.GetOrSeedProfile(r.Context(), owner, seed.BaseProfileContext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	draft, fallback := s.assist.DraftEmail(r.Context(), *app, profile.Context)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"subject":  draft.Subject,
		"body":     draft.Body,
		"fallback": fallback,
	})
}

// handleDraftStrategy generates interview questions and highlights.
func (s *Server) handleDraftStrategy(w http.ResponseWriter, r *http.Request) {
	owner, app, ok := s.getApplication(w, r)
	if !ok {
		return
	}

	if !s.busy.acquire("strategy", app.ID) {
		err := &ErrRecordBusy{ID: app.ID, Action: "strategy"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.busy.release("strategy", app.ID)

	profile, err := s.store.GetOrSeedProfile(r.Context(), owner, seed.BaseProfileContext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	draft, fallback := s.assist.DraftStrategy(r.Context(), *app, profile.Context)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions":  draft.Questions,
		"highlights": draft.Highlights,
		"fallback":   fallback,
	})
}

// handleCVCheck compares the stored profile against the record's role.
func (s *Server) handleCVCheck(w http.ResponseWriter, r *http.Request) {
	owner, app, ok := s.getApplication(w, r)
	if !ok {
		return
	}

	if !s.busy.acquire("cv-check", app.ID) {
		err := &ErrRecordBusy{ID: app.ID, Action: "cv-check"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	defer s.busy.release("cv-check", app.ID)

	profile, err := s.store.GetOrSeedProfile(r.Context(), owner, seed.BaseProfileContext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	draft, fallback := s.assist.DraftCVCheck(r.Context(), *app, profile.Context)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"matches":      draft.Matches,
		"improvements": draft.Improvements,
		"fallback":     fallback,
	})
}

// handleGenerateNotes produces a numbered action plan for a role and company
// that need not be stored yet.
func (s *Server) handleGenerateNotes(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Role    string `json:"role"`
		Company string `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Role) == "" || strings.TrimSpace(req.Company) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Role and company are required")
		return
	}

	profile, err := s.store.GetOrSeedProfile(r.Context(), owner, seed.BaseProfileContext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	notes, fallback := s.assist.GenerateNotes(r.Context(), req.Role, req.Company, profile.Context)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"notes":    notes,
		"fallback": fallback,
	})
}

// handleScanImage extracts application fields from an uploaded screenshot
// (multipart field "image").
func (s *Server) handleScanImage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.owner(r); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart body: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	data, err := readAllLimited(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read image: "+err.Error())
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		s.errorResponse(w, http.StatusBadRequest, "Upload must be an image")
		return
	}

	extraction, err := s.assist.ScanImage(r.Context(), mimeType, data, time.Now())
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "An error occurred during scanning")
		return
	}

	s.jsonResponse(w, http.StatusOK, extraction)
}
