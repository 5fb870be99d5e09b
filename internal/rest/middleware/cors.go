package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pedroramon/hotel-backend/internal/types"
)

// CORSMiddleware handles CORS headers
func CORSMiddleware(c *gin.Context) {
	c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
	c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+types.HeaderRequestID)
	c.Writer.Header().Set("Access-Control-Expose-Headers", types.HeaderRequestID)
	c.Writer.Header().Set("Access-Control-Max-Age", "86400")

	if c.Request.Method == http.MethodOptions {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.Next()
}
