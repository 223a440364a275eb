//go:build integration

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefanya/apptrack/internal/config"
	"github.com/zefanya/apptrack/internal/csvio"
	"github.com/zefanya/apptrack/internal/types"
)

// These tests require a running PostgreSQL database.
// Set TEST_DATABASE_URL environment variable to run them. No API key is
// configured, so every draft endpoint deterministically serves fallback
// content.

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}
	t.Setenv("JWT_SECRET", "integration-test-secret-0123456789ab")

	s, err := New(&config.Config{
		Port:           0,
		DatabaseURL:    dsn,
		AppID:          "integration-test",
		SeedOnFirstRun: false,
		ApplicantName:  "Zefanya Williams",
	})
	require.NoError(t, err)

	ts := httptest.NewServer(s.httpServer.Handler)
	t.Cleanup(func() {
		ts.Close()
		s.rateLimiter.Stop()
		s.store.Close()
	})
	return ts
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()

	resp, err := http.Post(ts.URL+"/auth/session", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session sessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	return session.Token
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestIntegration_ApplicationLifecycle(t *testing.T) {
	ts := startTestServer(t)
	token := createSession(t, ts)

	// Create
	var created types.Application
	resp := doJSON(t, http.MethodPost, ts.URL+"/applications", token, map[string]string{
		"role":        "Data Analyst",
		"company":     "Acme",
		"appliedDate": "2026-08-01",
		"status":      "SUBMITTED",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, types.StatusSubmitted, created.Status)

	// List
	var list struct {
		Applications []types.Application `json:"applications"`
		Total        int                 `json:"total"`
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/applications", token, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, list.Total)

	// Update
	var updated types.Application
	resp = doJSON(t, http.MethodPut, ts.URL+"/applications/"+created.ID.String(), token, map[string]string{
		"role":        "Data Analyst",
		"company":     "Acme",
		"appliedDate": "2026-08-01",
		"status":      "INTERVIEW",
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, types.StatusInterview, updated.Status)

	// KPIs see one active application.
	var kpis struct {
		TotalActive int `json:"totalActive"`
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/kpis", token, nil, &kpis)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, kpis.TotalActive)

	// Delete
	resp = doJSON(t, http.MethodDelete, ts.URL+"/applications/"+created.ID.String(), token, nil, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_UserIsolation(t *testing.T) {
	ts := startTestServer(t)
	alice := createSession(t, ts)
	bob := createSession(t, ts)

	var created types.Application
	resp := doJSON(t, http.MethodPost, ts.URL+"/applications", alice, map[string]string{
		"role": "Analyst", "company": "Acme",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var list struct {
		Total int `json:"total"`
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/applications", bob, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, list.Total, "bob must not see alice's records")
}

func TestIntegration_DraftEmailFallback(t *testing.T) {
	ts := startTestServer(t)
	token := createSession(t, ts)

	var created types.Application
	resp := doJSON(t, http.MethodPost, ts.URL+"/applications", token, map[string]string{
		"role": "Analyst", "company": "Acme", "status": "INTERVIEW",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var draft struct {
		Subject  string `json:"subject"`
		Body     string `json:"body"`
		Fallback bool   `json:"fallback"`
	}
	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/applications/%s/email", ts.URL, created.ID), token, nil, &draft)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, draft.Fallback, "no API key configured, draft must be fallback content")
	assert.Contains(t, draft.Body, "Zefanya Williams")
}

func TestIntegration_CSVRoundTrip(t *testing.T) {
	ts := startTestServer(t)
	token := createSession(t, ts)

	csv := "role,company,location,appliedDate,status,notes,link,source\n" +
		"Analyst,Acme,Jakarta,2026-08-01,SUBMITTED,note,,\n"

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/import", strings.NewReader(csv))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "text/csv")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	var imported struct {
		Imported int `json:"imported"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&imported))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, imported.Imported)

	// Export returns the same record.
	req, err = http.NewRequest(http.MethodGet, ts.URL+"/export", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "applications_")

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Analyst")
	assert.Contains(t, buf.String(), csvio.ImportSource, "rows imported without a source get the default tag")
}

func TestIntegration_ImportRejectsBadHeaders(t *testing.T) {
	ts := startTestServer(t)
	token := createSession(t, ts)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/import", strings.NewReader("role,company,status\n"))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Nothing was written.
	var list struct {
		Total int `json:"total"`
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/applications", token, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, list.Total)
}

func TestIntegration_RequiresAuth(t *testing.T) {
	ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/applications")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
