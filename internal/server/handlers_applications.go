package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/zefanya/apptrack/internal/db"
	"github.com/zefanya/apptrack/internal/types"
)

// handleListApplications lists the user's records in board order. An optional
// "q" query parameter filters by role or company substring.
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	apps, err := s.store.ListApplications(r.Context(), owner)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if term := r.URL.Query().Get("q"); term != "" {
		apps = types.FilterApplications(apps, term)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"applications": apps,
		"total":        len(apps),
	})
}

// handleCreateApplication adds a record. Unknown statuses and malformed
// dates are coerced rather than rejected.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var app types.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	app.ID = uuid.Nil
	app.Normalize(time.Now())
	if err := app.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	created, err := s.store.CreateApplication(r.Context(), owner, app)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateApplication overwrites a record and refreshes its timestamp.
func (s *Server) handleUpdateApplication(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var app types.Application
	if err := json.NewDecoder(r.Body).Decode(&app); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	app.ID = id
	app.Normalize(time.Now())
	if err := app.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	updated, err := s.store.UpdateApplication(r.Context(), owner, app)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteApplication removes a record.
func (s *Server) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if err := s.store.DeleteApplication(r.Context(), owner, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Application not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"deleted": true, "id": id})
}

// getApplication loads one record for a draft endpoint.
func (s *Server) getApplication(w http.ResponseWriter, r *http.Request) (db.Owner, *types.Application, bool) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return db.Owner{}, nil, false
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return db.Owner{}, nil, false
	}

	app, err := s.store.GetApplication(r.Context(), owner, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Application not found")
			return db.Owner{}, nil, false
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return db.Owner{}, nil, false
	}

	return owner, app, true
}
