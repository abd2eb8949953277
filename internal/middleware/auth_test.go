package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func identify(t *testing.T, req *http.Request) string {
	t.Helper()
	var seen string
	h := NewAuthMiddleware(testSecret, nil).Identify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "Identify must never reject")
	return seen
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func Test_Identify_BearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("google-123")))
	assert.Equal(t, "google-123", identify(t, req))
}

func Test_Identify_SessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("u-42"))})
	assert.Equal(t, "u-42", identify(t, req))
}

func Test_Identify_Anonymous(t *testing.T) {
	expired := validClaims("u1")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	cases := map[string]string{
		"no header":     "",
		"garbage":       "Bearer not-a-jwt",
		"wrong secret":  "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("u1")),
		"expired":       "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, expired),
		"empty subject": "Bearer " + signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("")),
		"wrong alg":     "Bearer " + signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("u1")),
	}
	for name, header := range cases {
		req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		assert.Equal(t, "", identify(t, req), name)
	}
}
