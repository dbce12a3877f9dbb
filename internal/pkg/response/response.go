// Package response implements the JSON envelope shared by every clinicops
// endpoint: {"success": true, "data": ...} on the happy path, or
// {"success": false, "error": {"code", "message"}} on failure. Error codes
// are stable identifiers for the scheduling frontend; messages are for
// humans and may change.
package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails attaches structured context to an error payload, such as
// the per-field rule map produced by request validation.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
