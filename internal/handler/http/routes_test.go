package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-manager/internal/logger"
	"github.com/MKhiriev/go-user-manager/internal/service"
	"github.com/MKhiriev/go-user-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: UserService ----

type mockUserSvc struct{}

func (m *mockUserSvc) Register(_ context.Context, name, email, _ string) (models.User, error) {
	return models.User{ID: 1, Name: name, Email: email}, nil
}
func (m *mockUserSvc) GetUser(_ context.Context, id int64) (models.User, error) {
	return models.User{ID: id}, nil
}
func (m *mockUserSvc) ListUsers(_ context.Context) ([]models.User, error) {
	return []models.User{}, nil
}
func (m *mockUserSvc) UpdateUser(_ context.Context, _ int64, _ models.UserUpdate) (int64, error) {
	return 1, nil
}
func (m *mockUserSvc) RemoveUser(_ context.Context, _ int64) error {
	return nil
}

// ---- Mock: AuthService ----

type mockAuthSvc struct{}

func (m *mockAuthSvc) Login(_ context.Context, _, _ string) (models.Token, error) {
	return models.Token{SignedString: "stub-token", UserID: 1}, nil
}
func (m *mockAuthSvc) CreateToken(_ context.Context, u models.User) (models.Token, error) {
	return models.Token{SignedString: "stub-token", UserID: u.ID}, nil
}
func (m *mockAuthSvc) ParseToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: 1}, nil
}

// ---- Helper ----

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			UserService: &mockUserSvc{},
			AuthService: &mockAuthSvc{},
		},
	}
	return h.Init()
}

func validAuthHeader() string { return "Bearer stub-token" }

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/", ""},
		{http.MethodPost, "/api/user/register", `{"name":"a","email":"a@x.com","password":"p"}`},
		{http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"p"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.NotEqual(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Guarded routes: rejected without a token, served with one ----

func TestInit_GuardedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/users", ""},
		{http.MethodGet, "/api/users/1", ""},
		{http.MethodPut, "/api/users/1", `{"name":"b"}`},
		{http.MethodDelete, "/api/users/1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// without a token
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, http.StatusUnauthorized, rr.Code)

			// with a token
			req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", validAuthHeader())
			rr = httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			require.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

// ---- Trace-id middleware runs for every request ----

func TestInit_TraceIDHeaderIsSet(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

// TestInit_TraceIDHeaderIsPropagated verifies that a caller-supplied trace id
// is echoed back instead of being replaced.
func TestInit_TraceIDHeaderIsPropagated(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-trace-id")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "caller-trace-id", rr.Header().Get(traceIDHeader))
}

func TestInit_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
