package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shoplite-be/internal/metrics"
)

var requestCount metrics.Counter

// RequestMiddleware tags every request with an X-Request-ID, stores it in
// the user context for FromCtx, and logs the request once it completes.
func RequestMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		c.SetUserContext(WithRequestID(c.UserContext(), reqID))
		c.Set("X-Request-ID", reqID)

		timer := metrics.StartTimer()
		err := c.Next()
		requestCount.Inc()

		FromCtx(c.UserContext()).Info("incoming request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.String("ip", c.IP()),
			zap.Duration("duration_ms", timer.Duration()),
		)

		return err
	}
}

// RequestCount reports how many requests this process has served.
func RequestCount() uint64 {
	return requestCount.Load()
}
