package middleware

import (
	"net/http"
	"strings"

	"github.com/Fecu3799/project-arq-web/services"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
)

const actorContextKey = "actor"

// BearerToken extracts the bearer token from the Authorization header, empty
// when absent or malformed.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// AuthMiddleware validates the bearer token against the session store and
// injects the resolved actor into the request context.
func AuthMiddleware(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.NewUnauthorized("missing or invalid Authorization header"))
			return
		}

		actor, err := auth.Resolve(token)
		if err != nil {
			utils.WriteError(c, err)
			c.Abort()
			return
		}

		c.Set(actorContextKey, *actor)
		c.Next()
	}
}
