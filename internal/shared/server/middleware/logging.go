package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"playbook-backend/internal/shared/telemetry"
)

// Context keys handlers set to enrich the request log line.
const (
	PlaybookIDKey = "playbookId"
	ReportKindKey = "reportKind"
)

// Logging emits one structured request.complete line per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if id := c.GetString(PlaybookIDKey); id != "" {
			fields["playbook_id"] = id
		}
		if kind := c.GetString(ReportKindKey); kind != "" {
			fields["report_kind"] = kind
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}
		telemetry.Info("request.complete", fields)
	}
}
