package restserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangid/wedding-invitation/codebase/factory"
	"github.com/golangid/wedding-invitation/codebase/factory/dependency"
	"github.com/golangid/wedding-invitation/codebase/factory/types"
	"github.com/golangid/wedding-invitation/codebase/interfaces"
	"github.com/golangid/wedding-invitation/wrapper"
)

type testHandler struct{}

func (testHandler) Mount(root *echo.Group) {
	root.GET("/ping", func(c echo.Context) error {
		return wrapper.NewHTTPResponse(http.StatusOK, "pong").JSON(c.Response())
	})
	root.POST("/echo", func(c echo.Context) error {
		var payload map[string]interface{}
		if err := json.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "bad payload")
		}
		return wrapper.NewHTTPResponse(http.StatusOK, "", payload).JSON(c.Response())
	})
	root.GET("/panic", func(c echo.Context) error {
		panic("something wrong")
	})
}

type testModule struct{}

func (testModule) RESTHandler() interfaces.EchoRestHandler { return testHandler{} }
func (testModule) Name() types.Module                      { return "test" }

type testService struct{}

func (testService) GetDependency() dependency.Dependency { return dependency.InitDependency() }
func (testService) GetModules() []factory.ModuleFactory  { return []factory.ModuleFactory{testModule{}} }
func (testService) Name() types.Service                  { return "test-service" }

func newTestHandler(opts ...OptionFunc) http.Handler {
	return NewServer(testService{}, opts...).(http.Handler)
}

func serve(h http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRESTServer(t *testing.T) {
	h := newTestHandler(
		SetRootPath("api/"),
		SetDebugMode(false),
		SetJaegerMaxPacketSize(1024),
		SetHealthCheck("mongodb", func(ctx context.Context) map[string]error {
			return map[string]error{"mongodb_write": nil}
		}),
	)

	t.Run("Testcase #1: mounted module route", func(t *testing.T) {
		rec, body := serve(h, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", body["message"])
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("Testcase #2: request body still readable after tracer", func(t *testing.T) {
		rec, body := serve(h, httptest.NewRequest(http.MethodPost, "/api/echo", strings.NewReader(`{"a":"b"}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]interface{}{"a": "b"}, body["data"])
	})

	t.Run("Testcase #3: unknown route", func(t *testing.T) {
		rec, body := serve(h, httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, `Resource "GET /api/nothing" not found`, body["error"])
	})

	t.Run("Testcase #4: panic recovered as internal error envelope", func(t *testing.T) {
		rec, body := serve(h, httptest.NewRequest(http.MethodGet, "/api/panic", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, wrapper.MsgInternalServerError, body["error"])
	})

	t.Run("Testcase #5: health", func(t *testing.T) {
		rec, body := serve(h, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, wrapper.MsgHealthy, body["message"])
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "mongodb", data["storage"])
	})

	t.Run("Testcase #6: cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
		req.Header.Set(echo.HeaderAccessControlRequestHeaders, "Content-Type")

		rec, _ := serve(h, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
		assert.Equal(t, "Content-Type", rec.Header().Get(echo.HeaderAccessControlAllowHeaders))
	})
}

func TestEchoCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		cfg        CORSConfig
		origin     string
		wantOrigin string
	}{
		{name: "Testcase #1: allow all", cfg: CORSConfig{}, origin: "http://a.com", wantOrigin: "*"},
		{name: "Testcase #2: allow listed origin", cfg: CORSConfig{AllowOrigins: []string{"http://a.com"}}, origin: "http://a.com", wantOrigin: "http://a.com"},
		{name: "Testcase #3: reject unlisted origin", cfg: CORSConfig{AllowOrigins: []string{"http://a.com"}}, origin: "http://b.com", wantOrigin: ""},
		{name: "Testcase #4: wildcard with credential echo origin", cfg: CORSConfig{AllowOrigins: []string{"*"}, AllowCredential: true}, origin: "http://b.com", wantOrigin: "http://b.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			rec := httptest.NewRecorder()

			err := EchoCORSMiddleware(tt.cfg)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})(e.NewContext(req, rec))

			require.NoError(t, err)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestEchoLoggerMiddleware(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = wrapper.CustomHTTPErrorHandler
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()

	err := EchoLoggerMiddleware()(func(c echo.Context) error {
		return errors.New("boom")
	})(e.NewContext(req, rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
