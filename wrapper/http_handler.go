package wrapper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-invitation/candihelper"
	"github.com/golangid/wedding-invitation/logger"
)

const (
	// MsgInternalServerError generic message, internal error detail is never sent to client
	MsgInternalServerError = "An internal server error occurred"
	// MsgHealthy health check message
	MsgHealthy = "Wedding Invitation API is running"
)

// CustomHTTPErrorHandler custom echo http error, render error as response envelope
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := MsgInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch {
		case code == http.StatusNotFound:
			message = fmt.Sprintf(`Resource "%s %s" not found`, c.Request().Method, c.Request().URL.Path)
		case code < http.StatusInternalServerError:
			message = fmt.Sprint(he.Message)
		}
	}
	if code >= http.StatusInternalServerError {
		logger.LogEf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}
	NewHTTPResponse(code, message).JSON(c.Response())
}

// HealthCheckFunc report health of each dependency, nil error mean healthy
type HealthCheckFunc func(ctx context.Context) map[string]error

// HealthPayload health check data
type HealthPayload struct {
	Timestamp    string            `json:"timestamp"`
	Version      string            `json:"version"`
	Storage      string            `json:"storage"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// EchoHandlerHealth health check handler, answer 503 when one of dependency is unhealthy
func EchoHandlerHealth(storage string, check HealthCheckFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload := HealthPayload{
			Timestamp: candihelper.FormatTimestamp(time.Now()),
			Version:   candihelper.Version,
			Storage:   storage,
		}

		code := http.StatusOK
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			payload.Dependencies = make(map[string]string)
			for name, err := range check(ctx) {
				payload.Dependencies[name] = "ok"
				if err != nil {
					logger.LogEf("health check %s: %v", name, err)
					payload.Dependencies[name] = "unavailable"
					code = http.StatusServiceUnavailable
				}
			}
		}

		message := MsgHealthy
		if code != http.StatusOK {
			message = "Wedding Invitation API is unhealthy"
		}
		return NewHTTPResponse(code, message, payload).JSON(c.Response())
	}
}
