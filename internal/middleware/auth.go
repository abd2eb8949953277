package middleware

import (
	"context"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SessionCookie is the cookie the sign-in flow stores its token in.
const SessionCookie = "session"

type contextKey struct{}

var userIDKey = contextKey{}

// UserID returns the identity resolved for the request, or "" if anonymous.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithUserID is used by tests and by Identify.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

type AuthMiddleware struct {
	jwtSecret []byte
	logger    *zap.Logger
}

func NewAuthMiddleware(secret []byte, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{jwtSecret: secret, logger: logger}
}

// Identify resolves the caller from a bearer token or the session cookie.
// A missing or invalid token leaves the request anonymous; handlers decide
// whether that is acceptable.
func (m *AuthMiddleware) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}
		sub, err := m.subject(tokenStr)
		if err != nil {
			m.logger.Debug("ignoring invalid token", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), sub)))
	})
}

func (m *AuthMiddleware) subject(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(sub) == "" {
		return "", jwt.ErrTokenInvalidSubject
	}
	return sub, nil
}

func tokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
