package middlewares

import (
	"errors"
	"strings"

	"github.com/IEarari/Seeds/entity"
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/IEarari/Seeds/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token and, when requiredRoles is non
// empty, enforces membership in that exact set. Roles are flat: a check for
// admin does not admit super_admin unless it is listed too.
//
// Every credential failure maps to the same 401; callers never learn whether
// the token was missing, malformed or expired.
func AuthMiddleware(db *gorm.DB, jwtSecret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		if !resolveIdentity(c, db, jwtSecret, tokenStr) {
			return
		}

		if !allowRole(c, requiredRoles) {
			return
		}

		c.Next()
	}
}

// resolveIdentity parses the token and loads the live role from the users
// table. The token's role claim is only a hint; a role change takes effect
// on the next request, not the next login.
func resolveIdentity(c *gin.Context, db *gorm.DB, jwtSecret, tokenStr string) bool {
	claims, err := utils.ParseToken(tokenStr, jwtSecret)
	if err != nil {
		resp.Unauthorized(c)
		c.Abort()
		return false
	}

	role := entity.RoleApplicant
	var user entity.User
	err = db.First(&user, claims.UserID).Error
	switch {
	case err == nil:
		role = user.Role
	case errors.Is(err, gorm.ErrRecordNotFound):
		// No user row yet: default applicant.
	default:
		resp.Unauthorized(c)
		c.Abort()
		return false
	}

	c.Set("userId", claims.UserID)
	c.Set("role", role)
	return true
}

func allowRole(c *gin.Context, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	role := utils.CurrentRole(c)
	for _, r := range requiredRoles {
		if role == r {
			return true
		}
	}
	resp.Forbidden(c)
	c.Abort()
	return false
}
