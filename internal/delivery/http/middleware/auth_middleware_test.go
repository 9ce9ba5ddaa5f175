package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"threadz/config"
	"threadz/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret-key"
	cfg.Auth.TokenTTL = time.Hour

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewAuthMiddleware(tokenSvc)
}

func runAuthenticated(m *AuthMiddleware, header string) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/account/orders", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenUserID string
	handler := m.Authenticate(func(c echo.Context) error {
		seenUserID = UserID(c)

		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, seenUserID
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "test-secret-key"
	cfg.Auth.TokenTTL = time.Hour
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, err := tokenSvc.GenerateToken("user_1")
	require.NoError(t, err)

	rec, userID := runAuthenticated(NewAuthMiddleware(tokenSvc), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user_1", userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := runAuthenticated(newAuthMiddleware(t), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_MISSING")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	rec, _ := runAuthenticated(newAuthMiddleware(t), "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	rec, _ := runAuthenticated(newAuthMiddleware(t), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}
