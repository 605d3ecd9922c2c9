package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAuthHandler creates an AuthHandler backed by the in-memory store.
func setupTestAuthHandler(t *testing.T) (*AuthHandler, *UserService) {
	t.Helper()
	userSvc, _ := newTestUserService(t)
	jwtSvc := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: 24,
	})
	return NewAuthHandler(userSvc, jwtSvc), userSvc
}

func postJSON(t *testing.T, body any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/users", postJSON(t, map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	}))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "test@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	body := map[string]string{
		"name":     "Test User",
		"email":    "test@example.com",
		"password": "password123",
	}

	w := httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest(http.MethodPost, "/users", postJSON(t, body)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest(http.MethodPost, "/users", postJSON(t, body)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing name",
			reqBody: map[string]string{"email": "test@example.com", "password": "password123"},
		},
		{
			name:    "invalid email",
			reqBody: map[string]string{"name": "Test User", "email": "invalid-email", "password": "password123"},
		},
		{
			name:    "missing email",
			reqBody: map[string]string{"name": "Test User", "password": "password123"},
		},
		{
			name:    "password too short",
			reqBody: map[string]string{"name": "Test User", "email": "test@example.com", "password": "short"},
		},
		{
			name:    "missing password",
			reqBody: map[string]string{"name": "Test User", "email": "test@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			w := httptest.NewRecorder()
			handler.Register(w, httptest.NewRequest(http.MethodPost, "/users", postJSON(t, tt.reqBody)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	handler, userSvc := setupTestAuthHandler(t)

	_, err := userSvc.Register(httptest.NewRequest(http.MethodGet, "/", nil).Context(), &types.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, map[string]string{
			"email":    "test@example.com",
			"password": "password123",
		})))

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, map[string]string{
			"email":    "test@example.com",
			"password": "wrong-password",
		})))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Login_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing email",
			reqBody: map[string]string{"password": "password123"},
		},
		{
			name:    "invalid email format",
			reqBody: map[string]string{"email": "invalid-email", "password": "password123"},
		},
		{
			name:    "missing password",
			reqBody: map[string]string{"email": "test@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			w := httptest.NewRecorder()
			handler.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, tt.reqBody)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, userSvc := setupTestAuthHandler(t)

	user, err := userSvc.Register(httptest.NewRequest(http.MethodGet, "/", nil).Context(), &types.CreateUserRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/users/me/password", postJSON(t, map[string]string{
			"current_password": "password123",
			"new_password":     "newpassword456",
		}))
		handler.UpdatePasswordWithUserID(w, req, user.ID)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Password updated successfully")
	})

	t.Run("wrong current password", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/users/me/password", postJSON(t, map[string]string{
			"current_password": "password123",
			"new_password":     "anotherpassword789",
		}))
		handler.UpdatePasswordWithUserID(w, req, user.ID)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/users/me/password", postJSON(t, map[string]string{
			"current_password": "password123",
			"new_password":     "newpassword456",
		}))
		handler.UpdatePasswordWithUserID(w, req, uuid.New())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthHandler_UpdatePassword_InvalidJSON(t *testing.T) {
	handler, _ := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/users/me/password", bytes.NewReader([]byte("invalid json")))
	w := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(w, req, uuid.New())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_UpdatePassword_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing current password",
			reqBody: map[string]string{"new_password": "newpassword123"},
		},
		{
			name:    "missing new password",
			reqBody: map[string]string{"current_password": "oldpassword"},
		},
		{
			name:    "new password too short",
			reqBody: map[string]string{"current_password": "oldpassword", "new_password": "short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupTestAuthHandler(t)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPut, "/users/me/password", postJSON(t, tt.reqBody))
			handler.UpdatePasswordWithUserID(w, req, uuid.New())

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}
