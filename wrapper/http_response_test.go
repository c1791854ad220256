package wrapper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangid/wedding-invitation/candihelper"
)

func TestNewHTTPResponse(t *testing.T) {
	type Data struct {
		ID string `json:"id"`
	}

	multiError := candihelper.NewMultiError()
	multiError.Append("template.design.templateId", fmt.Errorf("Template ID is required"))

	type args struct {
		code    int
		message string
		params  []interface{}
	}
	tests := []struct {
		name string
		args args
		want *HTTPResponse
	}{
		{
			name: "Testcase #1: Response data list",
			args: args{
				code:   http.StatusOK,
				params: []interface{}{[]Data{{ID: "061499700032"}, {ID: "061499700033"}}},
			},
			want: &HTTPResponse{
				Success: true,
				Code:    200,
				Data:    []Data{{ID: "061499700032"}, {ID: "061499700033"}},
			},
		},
		{
			name: "Testcase #2: Response created with message",
			args: args{
				code:    http.StatusCreated,
				message: "Wedding invitation created successfully",
				params:  []interface{}{Data{ID: "061499700032"}},
			},
			want: &HTTPResponse{
				Success: true,
				Code:    201,
				Message: "Wedding invitation created successfully",
				Data:    Data{ID: "061499700032"},
			},
		},
		{
			name: "Testcase #3: Response not found",
			args: args{
				code:    http.StatusNotFound,
				message: "Wedding invitation not found",
			},
			want: &HTTPResponse{
				Success: false,
				Code:    404,
				Error:   "Wedding invitation not found",
			},
		},
		{
			name: "Testcase #4: Response failed validation",
			args: args{
				code:    http.StatusBadRequest,
				message: "Validation failed",
				params:  []interface{}{multiError},
			},
			want: &HTTPResponse{
				Success: false,
				Code:    400,
				Error:   "Validation failed",
				Errors:  map[string]string{"template.design.templateId": "Template ID is required"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewHTTPResponse(tt.args.code, tt.args.message, tt.args.params...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("\x1b[31;1mNewHTTPResponse() = %v, \nwant => %v\x1b[0m", got, tt.want)
			}
		})
	}
}

func TestHTTPResponse_JSON(t *testing.T) {
	rec := httptest.NewRecorder()
	resp := NewHTTPResponse(http.StatusNotFound, "Wedding invitation not found")
	assert.NoError(t, resp.JSON(rec))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, candihelper.HeaderMIMEApplicationJSON, rec.Header().Get(candihelper.HeaderContentType))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"success": false, "error": "Wedding invitation not found"}, body)
}
