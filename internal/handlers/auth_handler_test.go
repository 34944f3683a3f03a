package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreated(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register", map[string]string{
		"name":            "Ann",
		"email":           "ann@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}, "")

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.NotZero(t, user["id"])
	assert.Equal(t, "Ann", user["name"])
	assert.Equal(t, "ann@example.com", user["email"])
	assert.NotEmpty(t, user["created_at"])
	assert.NotContains(t, user, "password")
}

func TestRegisterRejectsBadInput(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		req  map[string]string
	}{
		{"missing fields", map[string]string{"email": "a@example.com"}},
		{"password mismatch", map[string]string{"name": "Ann", "email": "a@example.com", "password": "secret1", "confirmPassword": "secret2"}},
		{"short password", map[string]string{"name": "Ann", "email": "a@example.com", "password": "12345", "confirmPassword": "12345"}},
		{"bad email format", map[string]string{"name": "Ann", "email": "nope", "password": "secret1", "confirmPassword": "secret1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register", tt.req, "")
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ann", "ann@example.com", "secret1")

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/register", map[string]string{
		"name":            "Other Ann",
		"email":           "ann@example.com",
		"password":        "secret2",
		"confirmPassword": "secret2",
	}, "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email already registered", body["message"])
}

func TestLoginRoundTripsToSameUser(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ann", "ann@example.com", "secret1")

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ann@example.com",
		"password": "secret1",
	}, "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "ann@example.com", user["email"])
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ann", "ann@example.com", "secret1")

	wrongResp, wrongBody := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"email":    "ann@example.com",
		"password": "wrong",
	}, "")
	unknownResp, unknownBody := doJSON(t, app, fiber.MethodPost, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret1",
	}, "")

	assert.Equal(t, fiber.StatusUnauthorized, wrongResp.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, unknownResp.StatusCode)
	assert.Equal(t, wrongBody["message"], unknownBody["message"])
}

func TestCheckEmail(t *testing.T) {
	app, _ := newTestApp(t)
	registerUser(t, app, "Ann", "ann@example.com", "secret1")

	resp, body := doJSON(t, app, fiber.MethodPost, "/api/auth/check-email", map[string]string{
		"email": "ann@example.com",
	}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["exists"])

	resp, body = doJSON(t, app, fiber.MethodPost, "/api/auth/check-email", map[string]string{
		"email": "nobody@example.com",
	}, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["exists"])

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/auth/check-email", map[string]string{}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthRoutesRejectNonPost(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/api/auth/register", "/api/auth/login", "/api/auth/check-email"} {
		resp, _ := doJSON(t, app, fiber.MethodGet, path, nil, "")
		assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode, path)
		assert.Equal(t, "POST", resp.Header.Get(fiber.HeaderAllow), path)
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, fiber.MethodGet, "/api/health", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
}
