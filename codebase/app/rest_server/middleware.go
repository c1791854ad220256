package restserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/logger"
)

// EchoCORSMiddleware middleware, allow all origin when config has no origin
func EchoCORSMiddleware(cfg CORSConfig) echo.MiddlewareFunc {
	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}
	allowMethods := strings.Join(cfg.AllowMethods, ",")
	if allowMethods == "" {
		allowMethods = strings.Join([]string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete, http.MethodOptions,
		}, ",")
	}
	allowHeaders := strings.Join(cfg.AllowHeaders, ",")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {

			req := c.Request()
			res := c.Response()
			origin := req.Header.Get(echo.HeaderOrigin)
			allowOrigin := ""

			// Check allowed origins, wildcard echo back the origin when credential allowed
			switch {
			case candihelper.StringInSlice("*", allowOrigins) && cfg.AllowCredential:
				allowOrigin = origin
			case candihelper.StringInSlice("*", allowOrigins):
				allowOrigin = "*"
			case candihelper.StringInSlice(origin, allowOrigins):
				allowOrigin = origin
			}

			// Simple request
			if req.Method != http.MethodOptions {
				res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)
				res.Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
				if cfg.AllowCredential {
					res.Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
				}
				return next(c)
			}

			// Preflight request
			res.Header().Add(echo.HeaderVary, echo.HeaderOrigin)
			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestMethod)
			res.Header().Add(echo.HeaderVary, echo.HeaderAccessControlRequestHeaders)
			res.Header().Set(echo.HeaderAccessControlAllowOrigin, allowOrigin)
			res.Header().Set(echo.HeaderAccessControlAllowMethods, allowMethods)
			if cfg.AllowCredential {
				res.Header().Set(echo.HeaderAccessControlAllowCredentials, "true")
			}
			if allowHeaders != "" {
				res.Header().Set(echo.HeaderAccessControlAllowHeaders, allowHeaders)
			} else if h := req.Header.Get(echo.HeaderAccessControlRequestHeaders); h != "" {
				res.Header().Set(echo.HeaderAccessControlAllowHeaders, h)
			}
			return c.NoContent(http.StatusNoContent)
		}
	}
}

// EchoLoggerMiddleware access log written through zap logger
func EchoLoggerMiddleware(skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			if _, ok := skip[req.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}
			latency := time.Since(start)

			res := c.Response()
			level := zapcore.InfoLevel
			switch {
			case res.Status >= http.StatusInternalServerError:
				level = zapcore.ErrorLevel
			case res.Status >= http.StatusBadRequest:
				level = zapcore.WarnLevel
			}

			fields := map[string]interface{}{
				"message":       "access",
				"remote_ip":     c.RealIP(),
				"host":          req.Host,
				"method":        req.Method,
				"uri":           req.RequestURI,
				"user_agent":    req.UserAgent(),
				"status":        res.Status,
				"latency":       latency.Nanoseconds(),
				"latency_human": latency.String(),
				"bytes_out":     res.Size,
			}
			if id := req.Header.Get(echo.HeaderXRequestID); id != "" {
				fields["id"] = id
			}
			if err != nil {
				fields["error"] = err.Error()
			}
			logger.LogWithField(level, fields)
			return nil
		}
	}
}
