package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/bizdocs_dashboard/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthConfig describes how session tokens issued by the identity provider are validated.
type AuthConfig struct {
	JWTSecret         string
	JWTAudience       string // optional
	SessionCookieName string // optional; falls back to the Authorization header only
}

// AuthMiddleware creates a Gin middleware handler that validates the session JWT taken from
// the Authorization header or, failing that, the session cookie.
func AuthMiddleware(cfg AuthConfig) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.JWTAudience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.JWTAudience))
	}
	parser := jwt.NewParser(parserOpts...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, source := extractToken(c, cfg.SessionCookieName)
		if tokenString == "" {
			logger.Warn("Session token missing")
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil {
			logger.Warn("Invalid session token", slog.String("source", source), slog.String("error", err.Error()))
			msg := "Invalid session"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Session has expired"
			}
			abortUnauthorized(c, msg)
			return
		}

		if !token.Valid || claims.Subject == "" {
			logger.Warn("Session token has no subject")
			abortUnauthorized(c, "Invalid session")
			return
		}

		userID := claims.Subject
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctx := WithLogger(WithUserID(c.Request.Context(), userID), enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(userIDKey), userID)

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, string) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1]), "header"
		}
		return "", "header"
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return cookie, "cookie"
		}
	}
	return "", ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	_ = c.Error(fmt.Errorf("%w: %s", apperrors.ErrUnauthenticated, msg))
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
}
