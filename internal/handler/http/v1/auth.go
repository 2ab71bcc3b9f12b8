package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// requestAPIKey достает ключ из X-API-Key или из Authorization: Bearer
func requestAPIKey(c *gin.Context) string {
	if key := c.GetHeader("X-API-Key"); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// APIKeyAuthMiddleware пропускает только запросы с одним из разрешенных ключей
func APIKeyAuthMiddleware(apiKeys []string, log *logrus.Logger) gin.HandlerFunc {
	allowed := make([][]byte, 0, len(apiKeys))
	for _, key := range apiKeys {
		if key != "" {
			allowed = append(allowed, []byte(key))
		}
	}

	return func(c *gin.Context) {
		entry := log.WithFields(logrus.Fields{"middleware": "auth", "path": c.FullPath()})

		apiKey := requestAPIKey(c)
		if apiKey == "" {
			entry.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		for _, key := range allowed {
			if subtle.ConstantTimeCompare(key, []byte(apiKey)) == 1 {
				c.Next()
				return
			}
		}

		entry.Warn("Invalid API key provided")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
	}
}

// RateLimitMiddleware ограничивает частоту запросов общим token bucket
func RateLimitMiddleware(limiter *rate.Limiter, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WithFields(logrus.Fields{"middleware": "rate_limit", "path": c.FullPath()}).Warn("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
