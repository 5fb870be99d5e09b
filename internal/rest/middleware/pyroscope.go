package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/pedroramon/hotel-backend/internal/pyroscope"
)

// PyroscopeMiddleware labels the profile samples of each request with its route
func PyroscopeMiddleware(svc *pyroscope.Service) gin.HandlerFunc {
	if svc == nil || !svc.IsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		labels := map[string]string{
			"method":   c.Request.Method,
			"endpoint": c.FullPath(),
			"handler":  c.Request.Method + " " + c.FullPath(),
		}
		svc.TagWrapper(c.Request.Context(), labels, func(context.Context) {
			c.Next()
		})
	}
}
