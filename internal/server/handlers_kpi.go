package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zefanya/apptrack/internal/chart"
	"github.com/zefanya/apptrack/internal/kpi"
)

// handleKPIs returns the dashboard summary metrics.
func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
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

	s.jsonResponse(w, http.StatusOK, kpi.Calculate(apps, time.Now()))
}

// handleStatusChart returns donut chart geometry for the status breakdown.
// Optional cx, cy and r query parameters control the chart dimensions.
func (s *Server) handleStatusChart(w http.ResponseWriter, r *http.Request) {
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

	cx := parseQueryFloat(r, "cx", 100)
	cy := parseQueryFloat(r, "cy", 100)
	radius := parseQueryFloat(r, "r", 80)

	slices := chart.StatusSlices(apps, cx, cy, radius)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"slices": slices,
		"total":  len(apps),
	})
}

func parseQueryFloat(r *http.Request, key string, defaultValue float64) float64 {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}
