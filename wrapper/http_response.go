package wrapper

import (
	"encoding/json"
	"net/http"

	"github.com/golangid/wedding-invitation/candihelper"
)

// HTTPResponse envelope of every api response
type HTTPResponse struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Code    int               `json:"-"`
}

// NewHTTPResponse for create common response.
// Message of failed response (code >= 400) is rendered as error, params may carry data or validation MultiError
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	commonResponse := new(HTTPResponse)

	for _, param := range params {
		switch val := param.(type) {
		case candihelper.MultiError:
			commonResponse.Errors = val.ToMap()
		default:
			commonResponse.Data = param
		}
	}

	if code < http.StatusBadRequest {
		commonResponse.Success = true
		commonResponse.Message = message
	} else {
		commonResponse.Error = message
	}
	commonResponse.Code = code
	return commonResponse
}

// JSON for set http JSON response (Content-Type: application/json) with parameter is http response writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	w.Header().Set(candihelper.HeaderContentType, candihelper.HeaderMIMEApplicationJSON)
	w.WriteHeader(resp.Code)
	return json.NewEncoder(w).Encode(resp)
}
