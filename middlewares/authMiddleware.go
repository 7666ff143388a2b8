package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bhoumik1804/krsika-backend/models"
	"github.com/bhoumik1804/krsika-backend/utils"
)

// AuthMiddleware validates the bearer token and loads the identity into the
// request context, where the model layer reads mill, user and role from.
// The user record is fetched so a deactivated account is locked out before
// its token expires.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		tokenString := strings.TrimPrefix(auth, "Bearer ")

		token, err := utils.JwtValidate(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims, ok := token.Claims.(*utils.JwtCustomClaim)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		user, err := utils.FetchModel[models.User](c.Request.Context(), claims.MillId, claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		if user.IsActive != nil && !*user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user is inactive"})
			return
		}

		ctx := c.Request.Context()
		ctx = utils.SetTokenInContext(ctx, tokenString)
		ctx = utils.SetMillIdInContext(ctx, claims.MillId)
		ctx = utils.SetUserIdInContext(ctx, user.ID)
		ctx = utils.SetUserNameInContext(ctx, user.Name)
		ctx = utils.SetRoleInContext(ctx, user.Role)
		ctx = utils.SetCorrelationIdInContext(ctx, correlationId(c))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Runs after
// AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := utils.GetRoleFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}

func correlationId(c *gin.Context) string {
	if v := c.GetHeader("X-Correlation-Id"); v != "" {
		return v
	}
	return uuid.NewString()
}
