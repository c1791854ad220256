package restserver

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-invitation/tracer"
	"github.com/golangid/wedding-invitation/wrapper"
)

// tracerMiddleware for wrap from http inbound (request from client)
func (s *restServer) tracerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if req.URL.Path == "/health" {
			return next(c)
		}

		operationName := fmt.Sprintf("%s %s", req.Method, c.Path())
		trace, ctx := tracer.StartTraceFromHeader(req.Context(), operationName, req.Header)
		defer func() {
			trace.SetTag("trace_id", tracer.GetTraceID(ctx))
			trace.Finish()
		}()

		httpDump, _ := httputil.DumpRequest(req, false)
		trace.SetTag("http.url_path", req.URL.Path)
		trace.SetTag("http.method", req.Method)
		trace.Log("http.request", httpDump)

		if req.Body != nil {
			body, _ := io.ReadAll(req.Body)
			if len(body) < s.opt.jaegerMaxPacketSize {
				trace.Log("request.body", body)
			} else {
				trace.Log("request.body.size", len(body))
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body)) // reuse body
		}

		respWriter := wrapper.NewWrapHTTPResponseWriter(c.Response().Writer, s.opt.jaegerMaxPacketSize)
		c.Response().Writer = respWriter
		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		statusCode := c.Response().Status
		trace.SetTag("http.status_code", statusCode)
		if statusCode >= http.StatusBadRequest {
			trace.SetError(fmt.Errorf("resp.code:%d", statusCode))
		}

		if body, complete := respWriter.Body(); complete {
			trace.Log("response.body", body)
		} else {
			trace.Log("response.body.size", respWriter.Size())
		}
		return nil
	}
}
