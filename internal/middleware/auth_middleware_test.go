package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"studydeck/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	claims *dto.AuthClaims
	err    error
}

func (s *stubAuthService) Register(ctx context.Context, username, email, password string) (*dto.AuthResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	return s.claims, s.err
}

func newProtectedApp(auth *stubAuthService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/me", Protected(auth), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": UserID(c)})
	})
	return app
}

func requestWithAuth(t *testing.T, app *fiber.App, header string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestProtected_MissingHeader(t *testing.T) {
	app := newProtectedApp(&stubAuthService{})
	resp, body := requestWithAuth(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "MISSING_AUTH_HEADER")
}

func TestProtected_WrongScheme(t *testing.T) {
	app := newProtectedApp(&stubAuthService{})
	resp, body := requestWithAuth(t, app, "Basic dXNlcjpwdw==")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_AUTH_SCHEME")
}

func TestProtected_BareSchemeWithoutToken(t *testing.T) {
	// fasthttp trims trailing whitespace from header values, so a bare
	// "Bearer" fails the scheme prefix check.
	app := newProtectedApp(&stubAuthService{})
	resp, body := requestWithAuth(t, app, "Bearer")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_AUTH_SCHEME")
}

func TestProtected_InvalidToken(t *testing.T) {
	app := newProtectedApp(&stubAuthService{err: errors.New("expired")})
	resp, body := requestWithAuth(t, app, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestProtected_ValidTokenSetsUserID(t *testing.T) {
	app := newProtectedApp(&stubAuthService{claims: &dto.AuthClaims{UserID: "user-42"}})
	resp, body := requestWithAuth(t, app, "Bearer good-token")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "user-42", parsed["userID"])
}

func TestUserID_UnprotectedRouteReturnsEmpty(t *testing.T) {
	app := fiber.New()
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.SendString(UserID(c))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/open", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Empty(t, string(body))
}
