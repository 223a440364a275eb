package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefanya/apptrack/internal/server/middleware"
)

// newTestServer builds a server without a database connection. Handlers that
// reach the store are covered in integration tests; these unit tests cover
// the paths that reject a request before any storage access.
func newTestServer() *Server {
	return &Server{
		jwtService: testJWTService(),
		busy:       newBusyRegistry(),
		appID:      "test-app",
	}
}

func authed(req *http.Request) *http.Request {
	return middleware.WithUserID(req, uuid.New())
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateSessionAnonymous(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/auth/session", nil)
	w := httptest.NewRecorder()
	s.handleCreateSession(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.ExpiresAt)

	userID, err := uuid.Parse(resp.UserID)
	require.NoError(t, err)

	claims, err := s.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestCreateSessionResumesIdentity(t *testing.T) {
	s := newTestServer()

	// First session.
	w := httptest.NewRecorder()
	s.handleCreateSession(w, httptest.NewRequest(http.MethodPost, "/auth/session", nil))
	var first sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	// Second session presenting the first token keeps the user ID.
	body, _ := json.Marshal(sessionRequest{Token: first.Token})
	w = httptest.NewRecorder()
	s.handleCreateSession(w, httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var second sessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.Equal(t, first.UserID, second.UserID)
	assert.NotEqual(t, first.Token, second.Token)
}

func TestCreateSessionRejectsBadToken(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(sessionRequest{Token: "garbage"})
	w := httptest.NewRecorder()
	s.handleCreateSession(w, httptest.NewRequest(http.MethodPost, "/auth/session", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateApplicationInvalidID(t *testing.T) {
	s := newTestServer()

	req := authed(httptest.NewRequest(http.MethodPut, "/applications/not-a-uuid", strings.NewReader(`{}`)))
	req.SetPathValue("id", "not-a-uuid")
	w := httptest.NewRecorder()
	s.handleUpdateApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid application ID")
}

func TestDeleteApplicationInvalidID(t *testing.T) {
	s := newTestServer()

	req := authed(httptest.NewRequest(http.MethodDelete, "/applications/xyz", nil))
	req.SetPathValue("id", "xyz")
	w := httptest.NewRecorder()
	s.handleDeleteApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateApplicationInvalidJSON(t *testing.T) {
	s := newTestServer()

	req := authed(httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{not json`)))
	w := httptest.NewRecorder()
	s.handleCreateApplication(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON")
}

func TestCreateApplicationUnauthenticated(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/applications", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	s.handleCreateApplication(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGenerateNotesMissingFields(t *testing.T) {
	s := newTestServer()

	body := `{"role":"","company":"Acme"}`
	req := authed(httptest.NewRequest(http.MethodPost, "/assist/notes", strings.NewReader(body)))
	w := httptest.NewRecorder()
	s.handleGenerateNotes(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestScanImageRequiresMultipart(t *testing.T) {
	s := newTestServer()

	req := authed(httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader("raw bytes")))
	w := httptest.NewRecorder()
	s.handleScanImage(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProfileEmptyContext(t *testing.T) {
	s := newTestServer()

	req := authed(httptest.NewRequest(http.MethodPut, "/profile", strings.NewReader(`{"context":"   "}`)))
	w := httptest.NewRecorder()
	s.handleUpdateProfile(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSSEWriterFormat(t *testing.T) {
	w := httptest.NewRecorder()

	sse, err := NewSSEWriter(w)
	require.NoError(t, err)
	require.NoError(t, sse.WriteEvent("snapshot", map[string]int{"total": 2}))

	out := w.Body.String()
	assert.Contains(t, out, "event: snapshot\n")
	assert.Contains(t, out, `data: {"total":2}`)
	assert.True(t, strings.HasSuffix(out, "\n\n"))
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
}

func TestSSEWriterKeepalive(t *testing.T) {
	w := httptest.NewRecorder()

	sse, err := NewSSEWriter(w)
	require.NoError(t, err)
	require.NoError(t, sse.WriteComment("keepalive"))

	assert.Equal(t, ": keepalive\n\n", w.Body.String())
}
