// logger.go - Request logging and panic recovery middleware
//
// Every request is logged once after the handler chain finishes:
// 5xx responses at error level, 4xx at warn, everything else at info.

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"time"     // Request latency

	"github.com/gin-gonic/gin" // Gin web framework
	"go.uber.org/zap"          // Structured logging
)

// RequestLogger - Returns a Gin middleware that logs each request with zap
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start the latency clock
		c.Next()            // Run the rest of the chain

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", routeOf(c)),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery - Returns a Gin middleware that turns panics into a 500 response
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	})
}

// routeOf returns the registered route pattern, so /api/products/:id is one label
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
