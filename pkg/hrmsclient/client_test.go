package hrmsclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, token string) *SessionStore {
	t.Helper()
	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	if token != "" {
		require.NoError(t, store.Save(token, &SessionUser{ID: "u1", Email: "u1@example.com", Role: "HR_ADMIN"}))
	}
	return store
}

func TestUnauthorizedFromCurrentUserClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Token expired"}}`))
	}))
	defer server.Close()

	store := newTestSession(t, "expired-token")
	client := New(server.URL, store)

	expired := false
	client.OnSessionExpired = func() { expired = true }

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.True(t, IsAuthError(err))

	assert.True(t, expired, "OnSessionExpired should fire for /auth/me")
	assert.Empty(t, store.Token(), "session must be cleared")
	assert.Nil(t, store.User())
}

func TestUnauthorizedElsewhereKeepsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"Token expired"}}`))
	}))
	defer server.Close()

	store := newTestSession(t, "racing-token")
	client := New(server.URL, store)

	expired := false
	client.OnSessionExpired = func() { expired = true }

	_, err := client.Employees().List(context.Background(), EmployeeListParams{})
	require.Error(t, err)
	assert.True(t, IsAuthError(err))

	assert.False(t, expired, "OnSessionExpired must not fire for other endpoints")
	assert.Equal(t, "racing-token", store.Token(), "session must survive a non-fatal 401")
	assert.NotNil(t, store.User())
}

func TestBearerAttachedFromSession(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := New(server.URL, newTestSession(t, "tok123"))
	_, err := client.Employees().List(context.Background(), EmployeeListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestLoginPersistsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"accessToken":"fresh","userId":"u9","email":"u9@example.com","role":"EMPLOYEE"}}`))
	}))
	defer server.Close()

	store := newTestSession(t, "")
	client := New(server.URL, store)

	resp, err := client.Login(context.Background(), LoginRequest{Email: "u9@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.AccessToken)

	assert.Equal(t, "fresh", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "u9", store.User().ID)
}

func TestAPIErrorCarriesDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"error":{"code":"VALIDATION_ERROR","message":"Validation failed","details":{"email":"email is required"}}}`))
	}))
	defer server.Close()

	client := New(server.URL, newTestSession(t, "tok"))
	_, err := client.Employees().Get(context.Background(), "e1")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	assert.Equal(t, "email is required", apiErr.Details["email"])
}
