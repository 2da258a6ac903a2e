package middlewares

import (
	"github.com/IEarari/Seeds/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// WSAuthMiddleware authenticates websocket upgrades. Browsers cannot set an
// Authorization header on a ws handshake, so the token rides in a query
// parameter instead.
func WSAuthMiddleware(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			resp.Unauthorized(c)
			c.Abort()
			return
		}
		if !resolveIdentity(c, db, jwtSecret, tokenStr) {
			return
		}
		c.Next()
	}
}
