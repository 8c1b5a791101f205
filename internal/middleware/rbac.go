package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sunrise-school/cms-api/internal/models"
	appErrors "github.com/sunrise-school/cms-api/pkg/errors"
	"github.com/sunrise-school/cms-api/pkg/response"
)

// RequireAdmin rejects any request whose token does not carry the admin
// role. The message matches what the admin panel shows to signed-in
// users who lack access.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, ok := claimsValue.(*models.JWTClaims)
		if !ok || !claims.IsAdmin() {
			response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "you don't have admin privileges"))
			c.Abort()
			return
		}
		c.Next()
	}
}
