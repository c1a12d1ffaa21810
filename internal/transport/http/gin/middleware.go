package httpgin

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MAksum123456/fly-port-api/internal/domain"
)

const identityKey = "identity"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// Authenticate validates the Authorization bearer token and stores the caller
// identity in the request context. Tokens are HS256, carrying the user id in
// "sub" and the staff flag in "is_staff".
func Authenticate(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, err := identityFromToken(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

func identityFromToken(header string, secret []byte) (domain.Identity, error) {
	var ident domain.Identity

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ident, errMissingToken
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return secret, nil
		})
	if err != nil {
		return ident, errInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return ident, errInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return ident, errInvalidToken
	}

	ident.UserID = userID
	ident.Staff, _ = claims["is_staff"].(bool)

	return ident, nil
}

// RequireStaff guards the reference-data mutation routes. It assumes
// Authenticate already ran on the group.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := identityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: errMissingToken.Error()})
			return
		}

		if !ident.Staff {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "staff access required"})
			return
		}

		c.Next()
	}
}

func identityFrom(c *gin.Context) (domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}

	ident, ok := v.(domain.Identity)
	return ident, ok
}

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.Writer.Header().Set("X-Request-ID", reqID)
		c.Set("request_id", reqID)

		c.Next()
	}
}

func CORS() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Requested-With",
			"X-Request-ID",
			"Idempotency-Key",
			"If-None-Match",
		},
		ExposeHeaders: []string{
			"X-Request-ID",
			"ETag",
			"Cache-Control",
			"Retry-After",
		},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(cfg)
}

func LoggingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		c.Next()

		latency := time.Since(start)
		if raw != "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		reqID, _ := c.Get("request_id")

		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("ip", c.ClientIP()),
			slog.String("ua", c.Request.UserAgent()),
			slog.Any("request_id", reqID),
			slog.Duration("latency", latency),
			slog.Int("bytes_out", c.Writer.Size()),
		}

		// slog.Group wants ...any, not ...slog.Attr
		anyAttrs := make([]any, len(attrs))
		for i := range attrs {
			anyAttrs[i] = attrs[i]
		}

		if len(c.Errors) > 0 {
			logger.Error("http", slog.Group("http", anyAttrs...))
		} else {
			logger.Info("http", slog.Group("http", anyAttrs...))
		}
	}
}
