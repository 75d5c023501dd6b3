package v1

import (
	"net/http"
	"strings"

	"github.com/dimassfeb-09/sima-app-web/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const contextUserIDKey = "user_id"

// AuthMiddleware - middleware аутентификации по токену доступа.
// Идентификатор пользователя кладется в контекст запроса.
func AuthMiddleware(tokens *auth.Manager, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			log.Warn("Access token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "access token required"})
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			log.WithError(err).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid access token"})
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}

// extractToken достает токен из заголовка Authorization: Bearer
// или из query-параметра token (используется websocket-подключением)
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// UserIDFromContext возвращает идентификатор аутентифицированного
// пользователя, положенный middleware в контекст запроса
func UserIDFromContext(c *gin.Context) (int64, bool) {
	v, ok := c.Get(contextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
