package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"alcyxob/gym-manager/internal/domain"
	"alcyxob/gym-manager/internal/metrics"
	"alcyxob/gym-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextAccountKey   = "account"
	ContextRequestIDKey = "requestID"
)

const requestIDHeader = "X-Request-ID"

// Authenticator resolves a session token to the account it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Credential, error)
}

// AuthMiddleware guards routes with the session cookie, falling back to a
// Bearer token for non-browser clients.
func AuthMiddleware(auth Authenticator, logger *zap.Logger, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			rec.RecordAuth(metrics.AuthRejected)
			abortWithError(c, http.StatusUnauthorized, "Unauthorized - No token provided")
			return
		}

		account, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrInvalidToken):
			rec.RecordAuth(metrics.AuthRejected)
			abortWithError(c, http.StatusUnauthorized, "Unauthorized - Invalid token")
			return
		case errors.Is(err, service.ErrUserNotFound):
			rec.RecordAuth(metrics.AuthRejected)
			abortWithError(c, http.StatusUnauthorized, "User not found")
			return
		default:
			logger.Error("session lookup failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(ContextRequestIDKey)),
			)
			abortWithError(c, http.StatusInternalServerError, msgInternalError)
			return
		}

		c.Set(ContextUserIDKey, account.UID())
		c.Set(ContextAccountKey, account)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// getUserIDFromContext returns the uid set by AuthMiddleware.
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs one line per request and records request metrics.
func RequestLogger(logger *zap.Logger, rec metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		rec.RecordRequest(c.Request.Method, c.FullPath(), status, latency)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		}
		if uid := c.GetString(ContextUserIDKey); uid != "" {
			fields = append(fields, zap.String("user_id", uid))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http_request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http_request", fields...)
		default:
			logger.Info("http_request", fields...)
		}
	}
}

// Recovery turns a panic into a logged 500.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(ContextRequestIDKey)),
		)
		abortWithError(c, http.StatusInternalServerError, msgInternalError)
	})
}

// CORS allows the configured frontend origin to call the API with cookies.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && origin == allowedOrigin {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
			h.Add("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
