package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Lupao-eth/trip-task/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	StackSize       int
	DisableStackAll bool
	Logger          *logger.ZapLogger
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		StackSize:       4 << 10, // 4 KB
		DisableStackAll: false,
		Logger:          nil,
	}
}

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with stack traces
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	// Get stack trace
	stack := debug.Stack()

	// Get request details
	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()

	// Get user ID if available
	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	// Get request ID
	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	config.Logger.Error("Panic recovered",
		logger.Any("panic", r),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("client_ip", clientIP),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
		logger.String("stacktrace", string(stack)),
	)

	// Respond with a generic error if nothing was written yet
	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
		})
	}
}
