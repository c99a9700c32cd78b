// logger.go - Request logging with zerolog

package middleware // Declares the package name

import ( // Import required packages
	"time" // Time handling

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/rs/zerolog"    // Structured logging
)

// RequestLogger logs one line per request. Internal errors attached with
// c.Error are logged with their cause.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Info()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event = event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP())
		if identity, ok := CurrentIdentity(c); ok {
			event = event.Str("user_id", identity.UserID)
		}
		if err := c.Errors.Last(); err != nil {
			event = event.Err(err.Err)
		}
		event.Msg("request")
	}
}
