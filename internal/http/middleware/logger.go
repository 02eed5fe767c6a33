package middleware

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// LoggerWithWriter writes one JSON object per request to w with the fields
// request_id, method, path, status, latency (milliseconds) and ts (RFC 3339 in loc).
// Server errors are logged at error level; trace_id is added when a span is active.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	if loc == nil {
		loc = time.UTC
	}
	var mu sync.Mutex
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		// Collect fields after the handler ran to capture the final status.
		rid := RequestIDFromCtx(c)
		status := c.Response().StatusCode()

		entry := map[string]any{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"level":      levelFor(status),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			entry["trace_id"] = sc.TraceID().String()
		}
		if u := UserFromCtx(c); u != nil {
			entry["user"] = u.Username
		}

		mu.Lock()
		_ = enc.Encode(entry)
		mu.Unlock()

		return nil
	}
}

func levelFor(status int) string {
	if status >= fiber.StatusInternalServerError {
		return "error"
	}
	return "info"
}
