package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func signToken(t *testing.T, sub any) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func doAuth(t *testing.T, authz string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID int64
	var called bool
	h := AuthJWT(config.Config{JWTSecret: testSecret})(func(c echo.Context) error {
		called = true
		gotID, _ = c.Get(CtxMemberIDKey).(int64)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, h(c))
	return rec, gotID, called
}

func TestAuthJWT_ValidToken(t *testing.T) {
	rec, memberID, called := doAuth(t, "Bearer "+signToken(t, "1"))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), memberID)
}

func TestAuthJWT_NumericSub(t *testing.T) {
	_, memberID, called := doAuth(t, "Bearer "+signToken(t, 7))

	assert.True(t, called)
	assert.Equal(t, int64(7), memberID)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _, called := doAuth(t, "")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongScheme(t *testing.T) {
	rec, _, called := doAuth(t, "Basic abc")

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_BadSignature(t *testing.T) {
	claims := jwt.MapClaims{"sub": "1"}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, _ := tok.SignedString([]byte("other_secret"))

	rec, _, called := doAuth(t, "Bearer "+signed)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
