package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/IEarari/Seeds/pkg/apperr"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}

func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
}

// Error maps a service-layer error kind onto the conventional status code.
// Unknown errors are logged server-side and reported with a generic message.
func Error(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Msg)
	case errors.Is(err, apperr.ErrApplicationsClosed):
		BadRequest(c, "applications are closed")
	case errors.Is(err, apperr.ErrInvalidStatus):
		BadRequest(c, "invalid status")
	case errors.Is(err, apperr.ErrUnauthorized):
		Unauthorized(c)
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c)
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c)
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
