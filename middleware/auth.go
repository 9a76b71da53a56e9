package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/models"
	"hotel-ops-backend/utils"
)

const actorKey = "actor"

// RequireAuth validates the Bearer token and stores the resulting Actor in
// the gin context. Handlers read it via ActorFrom and pass it explicitly to
// services; nothing downstream consults global auth state.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		actor, err := utils.ParseToken(raw, secret)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireRole aborts with 403 unless the actor holds one of the roles.
// Route-level gate only; services re-check against the permission table.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok || !allowed[actor.Role] {
			utils.JSONError(c, http.StatusForbidden, "operation not permitted for this account")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom returns the authenticated actor set by RequireAuth.
func ActorFrom(c *gin.Context) (models.Actor, bool) {
	v, exists := c.Get(actorKey)
	if !exists {
		return models.Actor{}, false
	}
	actor, ok := v.(models.Actor)
	return actor, ok
}
