package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/server/middleware"
	"github.com/jonathan/career-compass/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest attaches a user ID the way the auth middleware would.
func authedRequest(r *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey(), userID)
	return r.WithContext(ctx)
}

func TestHandleGetMe_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	w := httptest.NewRecorder()
	s.handleGetMe(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleGetMe(t *testing.T) {
	s := newTestServer(t)
	userSvc, _ := newTestUserService(t)
	s.userService = userSvc

	user, err := userSvc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Me",
		Email:    "me@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	s.handleGetMe(w, authedRequest(httptest.NewRequest(http.MethodGet, "/users/me", nil), user.ID))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "me@example.com")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandleSaveReport_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/reports", postJSON(t, map[string]any{
		"kind":    "analysis",
		"payload": map[string]any{"score": 72},
	}))
	w := httptest.NewRecorder()
	s.handleSaveReport(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleSaveReport_Validation(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()

	tests := []struct {
		name    string
		reqBody map[string]any
	}{
		{
			name:    "missing kind",
			reqBody: map[string]any{"payload": map[string]any{"score": 72}},
		},
		{
			name:    "unknown kind",
			reqBody: map[string]any{"kind": "horoscope", "payload": map[string]any{"score": 72}},
		},
		{
			name:    "missing payload",
			reqBody: map[string]any{"kind": "analysis"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := authedRequest(httptest.NewRequest(http.MethodPost, "/reports", postJSON(t, tt.reqBody)), userID)
			w := httptest.NewRecorder()
			s.handleSaveReport(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestHandleListReports_InvalidLimit(t *testing.T) {
	s := newTestServer(t)
	userID := uuid.New()

	for _, limit := range []string{"zero", "0", "-5"} {
		req := authedRequest(httptest.NewRequest(http.MethodGet, "/reports?limit="+limit, nil), userID)
		w := httptest.NewRecorder()
		s.handleListReports(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "limit=%s", limit)
		assert.Contains(t, w.Body.String(), "Invalid limit")
	}
}

func TestHandleGetReport_InvalidID(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/reports/not-a-uuid", nil)
	r.SetPathValue("id", "not-a-uuid")
	r = authedRequest(r, uuid.New())

	w := httptest.NewRecorder()
	s.handleGetReport(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid report ID")
}

func TestHandleDeleteReport_InvalidID(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRequest(http.MethodDelete, "/reports/not-a-uuid", nil)
	r.SetPathValue("id", "not-a-uuid")
	r = authedRequest(r, uuid.New())

	w := httptest.NewRecorder()
	s.handleDeleteReport(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid report ID")
}

func TestHandleUpdatePassword_Unauthorized(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/users/me/password", postJSON(t, map[string]string{
		"current_password": "password123",
		"new_password":     "newpassword456",
	}))
	w := httptest.NewRecorder()
	s.handleUpdatePassword(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
