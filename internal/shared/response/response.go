package response

import (
	"github.com/gin-gonic/gin"
)

// JSON writes a success payload as-is. The legacy endpoint contracts put
// fields like "status" and "total_pay" at the top level of the body, so
// there is no envelope around success responses.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error writes the error body shared by every failing endpoint.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"error": map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
