package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Anasnaveed69/MingleMe-sub000/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: 7,
		Email:  "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func runRequest(authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuthMiddleware(testSecret)(func(c echo.Context) error {
		claims := c.Get("user").(*models.JwtCustomClaims)
		return c.JSON(http.StatusOK, echo.Map{"user_id": claims.UserID})
	})
	return rec, handler(c)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	rec, err := runRequest("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	_, err := runRequest("")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	_, err := runRequest("Token abc")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))
	_, err := runRequest("Bearer " + token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Minute))
	_, err := runRequest("Bearer " + token)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
}
