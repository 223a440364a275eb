package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/zefanya/apptrack/internal/csvio"
)

// handleImportCSV bulk-loads records from a CSV body. A malformed file is
// rejected before anything is written, so an import never partially applies.
func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	owner, err := s.owner(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	body, err := readAllLimited(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	apps, err := csvio.Decode(string(body), time.Now())
	if err != nil {
		if errors.Is(err, csvio.ErrFormat) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Failed to parse CSV: "+err.Error())
		return
	}
	if len(apps) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "CSV contains no records")
		return
	}
	csvio.DefaultSource(apps)

	imported, err := s.store.BatchInsertApplications(r.Context(), owner, apps)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"imported": imported})
}

// handleExportCSV streams the user's records as a CSV download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+csvio.ExportFilename(time.Now())+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csvio.Encode(apps))) //nolint:errcheck
}
