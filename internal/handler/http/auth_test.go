// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-manager/internal/logger"
	"github.com/MKhiriev/go-user-manager/internal/service"
	"github.com/MKhiriev/go-user-manager/internal/store"
	"github.com/MKhiriev/go-user-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

// mockUserService implements service.UserService for unit tests.
// Each method field can be overridden per test case.
type mockUserService struct {
	registerFn   func(ctx context.Context, name, email, password string) (models.User, error)
	getUserFn    func(ctx context.Context, id int64) (models.User, error)
	listUsersFn  func(ctx context.Context) ([]models.User, error)
	updateUserFn func(ctx context.Context, id int64, update models.UserUpdate) (int64, error)
	removeUserFn func(ctx context.Context, id int64) error
}

func (m *mockUserService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getUserFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (int64, error) {
	return m.updateUserFn(ctx, id, update)
}

func (m *mockUserService) RemoveUser(ctx context.Context, id int64) error {
	return m.removeUserFn(ctx, id)
}

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (models.Token, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service mocks.
func newTestHandler(users service.UserService, auth service.AuthService) *Handler {
	return NewHandler(&service.Services{
		UserService: users,
		AuthService: auth,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

var validRegister = models.RegisterRequest{
	Name:     "Alice",
	Email:    "alice@example.com",
	Password: "pw123",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created, an Authorization header with the issued Bearer token, and a
// body carrying the persisted user without the password.
func TestRegister_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	users := &mockUserService{
		registerFn: func(_ context.Context, name, email, _ string) (models.User, error) {
			return models.User{ID: 1, Name: name, Email: email}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
			return stubToken(signedToken, u.ID), nil
		},
	}

	h := newTestHandler(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockUserService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"missing field", service.ErrInvalidDataProvided, http.StatusBadRequest},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict},
		{"hashing fault", service.ErrHashingFailed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserService{
				registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			h := newTestHandler(users, &mockAuthService{})
			req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestRegister_InternalErrorBodyIsGeneric verifies that a server fault never
// leaks internal error text into the response body.
func TestRegister_InternalErrorBodyIsGeneric(t *testing.T) {
	users := &mockUserService{
		registerFn: func(_ context.Context, _, _, _ string) (models.User, error) {
			return models.User{}, service.ErrHashingFailed
		},
	}

	h := newTestHandler(users, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), resp.Message)
	assert.NotContains(t, rec.Body.String(), "hashing")
}

func TestRegister_TokenCreationFails(t *testing.T) {
	users := &mockUserService{
		registerFn: func(_ context.Context, name, email, _ string) (models.User, error) {
			return models.User{ID: 1, Name: name, Email: email}, nil
		},
	}
	auth := &mockAuthService{
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(users, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(jsonBody(t, validRegister)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return stubToken(signedToken, 42), nil
		},
	}

	h := newTestHandler(&mockUserService{}, auth)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "pw123"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(&mockUserService{}, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(""))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_InvalidCredentials verifies that a failed login answers 401 with
// the uniform credentials message, regardless of which check failed upstream.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidCredentials
		},
	}

	h := newTestHandler(&mockUserService{}, auth)
	body := jsonBody(t, models.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, service.ErrInvalidCredentials.Error(), resp.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return models.Token{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(&mockUserService{}, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"email":"alice@example.com"}`))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
