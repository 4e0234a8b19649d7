package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// adminIDKey is the gin context key holding the authenticated subject.
const adminIDKey = "adminID"

// TokenVerifier resolves a bearer token to the subject it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// authMiddleware rejects requests without a valid bearer token before they
// reach the wrapped handler.
func authMiddleware(tokens TokenVerifier, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token := splitAuthorization(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}
		if !strings.EqualFold(scheme, "Bearer") {
			logger.WithField("scheme", scheme).Debug("rejected authorization scheme")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		subject, err := tokens.Verify(token)
		if err != nil {
			logger.WithError(err).Debug("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(adminIDKey, subject)
		c.Next()
	}
}

func splitAuthorization(header string) (scheme, token string) {
	parts := strings.Fields(header)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	case 2:
		return parts[0], parts[1]
	default:
		// extra segments can never form a valid token
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// AdminID returns the subject attached by the auth middleware, or "" on
// unauthenticated routes.
func AdminID(c *gin.Context) string {
	return c.GetString(adminIDKey)
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
