package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	_ "foodshare/internal/adapters/in/http/docs" // registers the OpenAPI document

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"
)

const (
	DefaultRateLimit = 20
	DefaultRateBurst = 40
)

// RouterConfig holds the edge settings of the HTTP server.
type RouterConfig struct {
	SigningKey []byte
	// RateLimit is the sustained number of requests per second allowed per client IP.
	RateLimit float64
	RateBurst int
	// Health reports whether the service can reach its dependencies. Nil means always healthy.
	Health func(ctx context.Context) error
	Logger *slog.Logger
}

// NewRouter builds the echo instance: request logging, panic recovery and rate
// limiting apply everywhere; /api/v1 additionally requires a bearer token.
func NewRouter(server *Server, cfg RouterConfig) *echo.Echo {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = DefaultRateBurst
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger(cfg.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RateLimit),
			Burst:     cfg.RateBurst,
			ExpiresIn: 3 * time.Minute,
		}),
		ErrorHandler: func(ctx echo.Context, _ error) error {
			return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: "Client could not be identified"})
		},
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return ctx.JSON(http.StatusTooManyRequests, Error{Code: http.StatusTooManyRequests, Message: "Too many requests"})
		},
	}))

	e.GET("/health", func(ctx echo.Context) error {
		if cfg.Health != nil {
			if err := cfg.Health(ctx.Request().Context()); err != nil {
				return ctx.JSON(http.StatusServiceUnavailable, Error{
					Code:    http.StatusServiceUnavailable,
					Message: "Unhealthy",
				})
			}
		}
		return ctx.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.RegisterHandlers(e.Group("/api/v1", IdentityMiddleware(cfg.SigningKey)))

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(ctx.Request().Context(), level, "Request handled", attrs...)
			return nil
		},
	})
}
