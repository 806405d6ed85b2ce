package middleware

import (
	"crypto/subtle"
	"net/http"

	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth gates every route behind an opaque static key, accepted from
// the api_key header or the api_key query parameter. Key verification
// itself is the whole story: there are no users, tokens or roles behind it.
func APIKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("api_key")
		if key == "" {
			key = c.Query("api_key")
		}

		if expected == "" || key == "" ||
			subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			response.Error(c,
				http.StatusUnauthorized,
				apperror.CodeUnauthorized,
				"Invalid or missing API key",
				nil,
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
