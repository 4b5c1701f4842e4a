package middleware

import (
	"net/http"

	"github.com/Fecu3799/project-arq-web/models"
	"github.com/Fecu3799/project-arq-web/utils"

	"github.com/gin-gonic/gin"
)

// ActorFromContext returns the actor injected by AuthMiddleware.
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}

// RequireRole gates a route group by actor role. It must run after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.NewInternal("Authentication context is missing"))
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.NewForbidden("you do not have permission to access this resource"))
	}
}
