package utils

import (
	"collectibles-auction/internal/auctionerrors"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends a structured success envelope
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, gin.H{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// JSONError sends a structured error envelope. When the error carries an
// offending field name it is surfaced so clients can highlight the input.
func JSONError(c *gin.Context, status int, err error, message string) {
	body := gin.H{
		"status":  status,
		"message": message,
		"error":   err.Error(),
	}
	if field := auctionerrors.FieldOf(err); field != "" {
		body["field"] = field
	}
	c.JSON(status, body)
}
