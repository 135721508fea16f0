package api_common

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/config"
)

// GinForService builds the engine for a named service with request logging, panic recovery and, when configured,
// CORS.
func GinForService(serviceId string, api *config.ServiceApi) *gin.Engine {
	logFormatter := func(param gin.LogFormatterParams) string {
		var statusColor, methodColor, resetColor string
		if param.IsOutputColor() {
			statusColor = param.StatusCodeColor()
			methodColor = param.MethodColor()
			resetColor = param.ResetColor()
		}

		if param.Latency > time.Minute {
			param.Latency = param.Latency.Truncate(time.Second)
		}
		return fmt.Sprintf("[%s] %v |%s %3d %s| %13v | %15s |%s %-7s %s %#v\n%s",
			serviceId,
			param.TimeStamp.Format("2006/01/02 - 15:04:05"),
			statusColor, param.StatusCode, resetColor,
			param.Latency,
			param.ClientIP,
			methodColor, param.Method, resetColor,
			param.Path,
			param.ErrorMessage,
		)
	}

	engine := gin.New()
	engine.Use(gin.LoggerWithFormatter(logFormatter), gin.Recovery())

	if api != nil && api.Cors != nil {
		engine.Use(cors.New(CorsConfig(api.Cors)))
	}

	return engine
}

// CorsConfig maps the configured CORS block onto gin-contrib/cors. Unset lists fall back to the library defaults.
func CorsConfig(c *config.Cors) cors.Config {
	cc := cors.DefaultConfig()

	if len(c.AllowedOrigins) > 0 {
		cc.AllowOrigins = c.AllowedOrigins
	} else {
		cc.AllowAllOrigins = true
	}

	if len(c.AllowedMethods) > 0 {
		cc.AllowMethods = c.AllowedMethods
	}

	if len(c.AllowedHeaders) > 0 {
		cc.AllowHeaders = c.AllowedHeaders
	}

	cc.AllowCredentials = c.AllowCredentials

	if c.MaxAge != nil {
		cc.MaxAge = c.MaxAge.Duration
	}

	return cc
}

// RunServer serves until ctx is cancelled, then shuts down gracefully within shutdownTimeout.
func RunServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)

	go func() {
		logger.Info("starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server forced to shut down")
	}

	logger.Info("http server exited")
	return nil
}
