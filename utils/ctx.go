package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user's id stored on the context by
// the auth middleware. Zero means the request never passed authentication.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	}
	return 0
}

// CurrentRole returns the live role resolved by the auth middleware, or the
// empty string on an unauthenticated request.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
