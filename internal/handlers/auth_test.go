package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "existing@example.com")

	payload := map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := env.request(http.MethodPost, "/api/login", body, "")

	require.Equal(t, http.StatusOK, w.Code)

	token := w.Body.String()
	require.NotEmpty(t, token)

	email, err := env.tokenService.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "existing@example.com", email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "existing@example.com")

	body, err := json.Marshal(map[string]string{
		"email":    "existing@example.com",
		"password": "wrong",
	})
	require.NoError(t, err)

	w := env.request(http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	body, err := json.Marshal(map[string]string{
		"email":    "missing@example.com",
		"password": "supersecret",
	})
	require.NoError(t, err)

	// The response must not reveal whether the email or the password
	// was wrong.
	w := env.request(http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(http.MethodPost, "/api/login", []byte(`{"email":"a@example.com"}`), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAuth_RejectsBadTokens(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "author@example.com")

	body := []byte(`{"name":"In progress","slug":"in_progress"}`)

	// No token
	w := env.request(http.MethodPost, "/api/task_statuses", body, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = env.request(http.MethodPost, "/api/task_statuses", body, "not-a-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Token whose subject no longer exists
	ghost := env.tokenFor(t, "ghost@example.com")
	w = env.request(http.MethodPost, "/api/task_statuses", body, ghost)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token
	token := env.tokenFor(t, user.Email)
	w = env.request(http.MethodPost, "/api/task_statuses", body, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "in_progress", response["slug"])
}
