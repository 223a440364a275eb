package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/zefanya/apptrack/internal/assistant"
	"github.com/zefanya/apptrack/internal/seed"
)

// maxUploadBytes caps the total size of uploaded documents per request.
const maxUploadBytes = 32 << 20

// handleGetProfile returns the stored skills context, installing the default
// on first access.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.store.GetOrSeedProfile(r.Context(), owner, seed.BaseProfileContext)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile replaces the skills context with user-provided text.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Context) == "" {
		s.errorResponse(w, http.StatusBadRequest, "Profile context is required")
		return
	}

	profile, err := s.store.PutProfile(r.Context(), owner, strings.TrimSpace(req.Context))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleAnalyzeProfile synthesizes a new skills context from uploaded
// documents (multipart field "files") and stores it. When analysis fails the
// base context is stored instead and the response is flagged as fallback.
func (s *Server) handleAnalyzeProfile(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart body: "+err.Error())
		return
	}

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one file is required")
		return
	}

	var files []assistant.Attachment
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
			return
		}
		files = append(files, assistant.Attachment{
			Name:     fh.Filename,
			MIMEType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	context, fallback := s.assist.AnalyzeProfile(r.Context(), files)

	profile, err := s.store.PutProfile(r.Context(), owner, context)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"context":     profile.Context,
		"lastUpdated": profile.LastUpdated,
		"fallback":    fallback,
	})
}
