package wrapper

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) (resp struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return
}

func TestCustomHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "Testcase #1: unknown route",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  `Resource "GET /testing" not found`,
		},
		{
			name:     "Testcase #2: method not allowed keep echo message",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed,
			wantMsg:  "Method Not Allowed",
		},
		{
			name:     "Testcase #3: internal error detail is hidden",
			err:      errors.New("mongo: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(echo.GET, "/testing", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			CustomHTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}

func TestEchoHandlerHealth(t *testing.T) {
	tests := []struct {
		name     string
		check    HealthCheckFunc
		wantCode int
		wantDeps map[string]interface{}
	}{
		{
			name:     "Testcase #1: without dependency",
			wantCode: http.StatusOK,
		},
		{
			name: "Testcase #2: mongodb up",
			check: func(ctx context.Context) map[string]error {
				return map[string]error{"mongodb_write": nil}
			},
			wantCode: http.StatusOK,
			wantDeps: map[string]interface{}{"mongodb_write": "ok"},
		},
		{
			name: "Testcase #3: mongodb down",
			check: func(ctx context.Context) map[string]error {
				return map[string]error{"mongodb_write": nil, "mongodb_read": errors.New("server selection timeout")}
			},
			wantCode: http.StatusServiceUnavailable,
			wantDeps: map[string]interface{}{"mongodb_write": "ok", "mongodb_read": "unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(echo.GET, "/health", nil)
			rec := httptest.NewRecorder()

			require.NoError(t, EchoHandlerHealth("mongodb", tt.check)(e.NewContext(req, rec)))

			assert.Equal(t, tt.wantCode, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantCode == http.StatusOK, body.Success)
			assert.Equal(t, "mongodb", body.Data["storage"])
			assert.NotEmpty(t, body.Data["timestamp"])
			if tt.wantDeps != nil {
				assert.Equal(t, tt.wantDeps, body.Data["dependencies"])
			} else {
				assert.NotContains(t, body.Data, "dependencies")
			}
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, MsgHealthy, body.Message)
			}
		})
	}
}
